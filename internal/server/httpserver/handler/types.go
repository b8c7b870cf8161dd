package handler

import "time"

// Response is the standard API response envelope.
// All JSON responses use this format (except /metrics which uses
// Prometheus exposition format).
type Response struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
	Details   any    `json:"details,omitempty"`
}

// NewResponse creates a success response.
func NewResponse(requestID string, data any) *Response {
	return &Response{
		Code:      "OK",
		Message:   "Success",
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Data:      data,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(requestID, code, message string, details any) *Response {
	return &Response{
		Code:      code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Details:   details,
	}
}

// AddUserRequest is the request body for POST /users/add.
type AddUserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	MobileToken string `json:"mobile_token,omitempty"`
}

// AuthUserRequest is the request body for POST /users/auth.
type AuthUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// EditUserRequest is the request body for POST /users/edit.
type EditUserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	MobileToken string `json:"mobile_token,omitempty"`
}

// DeleteUserRequest is the request body for POST /users/delete.
type DeleteUserRequest struct {
	Username string `json:"username"`
}

// AddRoomRequest is the request body for POST /rooms/add.
type AddRoomRequest struct {
	Name         string   `json:"name"`
	Host         string   `json:"host"`
	Participants []string `json:"participants,omitempty"`
	Limit        int      `json:"limit,omitempty"`
}

// EditRoomRequest is the request body for POST /rooms/edit. The acting
// host hands the room identified by GUID over to NewHost.
type EditRoomRequest struct {
	Host    string `json:"host"`
	NewHost string `json:"new_host"`
	GUID    string `json:"guid"`
}

// JoinLeaveRoomRequest is the request body for POST /rooms/joinOrLeave.
type JoinLeaveRoomRequest struct {
	Username string `json:"username"`
	GUID     string `json:"guid"`
}

// SearchRoomsRequest is the request body for POST /rooms/search.
type SearchRoomsRequest struct {
	Username string `json:"username"`
}
