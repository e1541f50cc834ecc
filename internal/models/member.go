package models

// Member represents one resident of the house.
//
// Members are seeded by an operator (see cmd/kosctl) and are read-only from
// the service's point of view. Names are display keys and are not guaranteed
// unique.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string `json:"id"`

	// Name is the display name of the member.
	Name string `json:"name"`
}
