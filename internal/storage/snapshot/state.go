package snapshot

// UserRecord is the persisted form of a user.
type UserRecord struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Password    string `json:"password"` // credential digest, never plaintext
	MobileToken string `json:"mobile_token"`
}

// RoomRecord is the persisted form of a room. Only usernames are stored;
// user objects are re-resolved against the users collection at load time.
// The host's username is not repeated in Participants.
type RoomRecord struct {
	Name         string   `json:"name"`
	GUID         string   `json:"guid"`
	Limit        int      `json:"limit"`
	Host         string   `json:"host"`
	Participants []string `json:"participants"`
}

// State is the complete on-disk serialization of the store.
type State struct {
	Users       []UserRecord     `json:"users"`
	Rooms       []RoomRecord     `json:"rooms"`
	AuthSession map[string]int64 `json:"authSession"`
}

// NewState returns an empty State with initialized collections.
func NewState() *State {
	return &State{
		Users:       []UserRecord{},
		Rooms:       []RoomRecord{},
		AuthSession: map[string]int64{},
	}
}
