// Package service implements the RoomStore orchestration layer.
//
// The Store owns the users, rooms, and session collections, guards every
// mutating operation behind the session registry, and persists a full
// snapshot after each successful mutation. It is constructed explicitly
// and passed to its consumers; there is no package-level instance.
package service
