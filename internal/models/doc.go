// Package models defines the core domain models for Kosboard.
//
// # Models
//
//   - Member: a resident of the house, seeded by an operator
//   - Contribution: one dues payment credited to a member
//   - Expense: one outgoing payment from the shared pot
//   - DutyAssignment: a weekly chore rotation entry
//   - User: a login account
//   - Profile: the advisory admin flag attached to a user
//
// # Design Principles
//
// 1. **Append-only ledgers**: contributions and expenses are never updated in
// place. A correction is a delete followed by a reinsert.
//
// 2. **Name snapshots**: contribution rows and duty assignments keep the
// member's name as it was at write time. Renaming a member later does not
// relabel history.
//
// 3. **Avoid circular references**: relationships use ID strings instead of
// pointers.
package models
