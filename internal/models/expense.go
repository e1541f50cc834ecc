package models

// Expense represents one outgoing payment from the shared pot.
// Unlike a Contribution it is not tied to a member.
type Expense struct {
	// ID is the unique identifier for the record (UUID format).
	ID string `json:"id"`

	// Description says what the money was spent on. Never empty.
	Description string `json:"description"`

	// Amount is the payment in currency minor units. Always positive.
	Amount int64 `json:"amount"`

	// CreatedAt is the Unix timestamp when the record was written.
	CreatedAt int64 `json:"created_at"`
}
