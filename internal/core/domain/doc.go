// Package domain defines the core domain models for RoomStore.
//
// Domain models are pure value objects and entities without any
// IO dependencies or framework coupling: users with derived
// identities, capacity-bounded rooms, and the error taxonomy shared
// by every layer above.
package domain
