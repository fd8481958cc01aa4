package tenant

// lifecycle enforces tenant status transitions.
var allowedTransitions = map[Status][]Status{
	StatusCreating:  {StatusActive, StatusFailed},
	StatusActive:    {StatusSuspended},
	StatusSuspended: {StatusActive},
	StatusFailed:    {},
}

// CanTransition checks if a status change is allowed.
func CanTransition(from, to Status) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the allowed next statuses for a given status.
func AllowedTransitions(from Status) []Status {
	allowed, exists := allowedTransitions[from]
	if !exists {
		return []Status{}
	}
	return allowed
}
