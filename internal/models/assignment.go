package models

// MaxAssignees is the number of assignee slots on a duty assignment.
const MaxAssignees = 3

// DutyAssignment represents one weekly chore rotation entry.
//
// Assignees are stored as name snapshots rather than member references, so a
// member rename does not retroactively relabel past rotations. Week numbers
// are not unique; two assignments for the same week are allowed.
type DutyAssignment struct {
	// ID is the unique identifier for the assignment (UUID format).
	ID string `json:"id"`

	// WeekNumber is the 1-based week of the rotation.
	WeekNumber int `json:"week_number"`

	// ScheduledDate is the calendar date the duty runs, in YYYY-MM-DD form.
	ScheduledDate string `json:"scheduled_date"`

	// Assignees holds 1 to MaxAssignees member names, in slot order.
	Assignees []string `json:"assignees"`
}
