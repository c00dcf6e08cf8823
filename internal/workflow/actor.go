// Package workflow implements the approval state machine: starting a
// request's route, materializing per-step tasks, advancing after each
// decision, and the user-facing task and request operations.
package workflow

// Actor is the authenticated user driving an operation.
type Actor struct {
	ID        int
	Username  string
	Role      string
	Dept      *string
	ManagerID *int
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}
