package domain

import "time"

// Status values an upcoming project may carry. Membership is enforced on
// every write; there is no transition graph, any status may follow any other.
const (
	StatusUpcoming         = "Upcoming"
	StatusUnderDevelopment = "Under Development"
	StatusPlanning         = "Planning"
	StatusCancelled        = "Cancelled"
	StatusCompleted        = "Completed"
)

// ValidStatuses lists the accepted status values in display order.
var ValidStatuses = []string{
	StatusUpcoming,
	StatusUnderDevelopment,
	StatusPlanning,
	StatusCancelled,
	StatusCompleted,
}

// UpcomingProject is a pipeline entry. Code is the external identifier
// (UP001, UP002, ...), assigned once at creation and never changed.
// Deadline is kept as the caller-supplied date string; it is validated to be
// parseable but stored verbatim. AssignedTo holds team member display names,
// resolved to email addresses only at notification time.
type UpcomingProject struct {
	Code        string
	Name        string
	Client      string
	Description string
	TechStack   []string
	Status      string
	Deadline    string
	AssignedTo  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsValidStatus reports whether s is one of the five accepted statuses.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
