// Package snapshot persists the full RoomStore state to a single flat
// JSON file and loads it back at startup.
//
// Writes are atomic: the state is written to a temporary file, synced,
// then renamed over the live file, so a crash mid-write never leaves a
// torn snapshot behind.
package snapshot
