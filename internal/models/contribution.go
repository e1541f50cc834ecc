package models

// Contribution represents one dues payment credited to a member.
type Contribution struct {
	// ID is the unique identifier for the record (UUID format).
	ID string `json:"id"`

	// MemberID references the member the payment is credited to.
	MemberID string `json:"member_id"`

	// MemberName is a snapshot of the member's name at write time.
	MemberName string `json:"member_name"`

	// Amount is the payment in currency minor units. Always positive.
	Amount int64 `json:"amount"`

	// CreatedAt is the Unix timestamp when the record was written.
	CreatedAt int64 `json:"created_at"`
}
