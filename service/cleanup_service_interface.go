package service

// CleanupServiceInterface tracks generated artifacts and deletes each one a
// fixed retention window after its most recent registration
type CleanupServiceInterface interface {
	// Register schedules deferred deletion for an artifact name. Registering
	// a name that already has a pending deletion cancels it first, so the
	// retention clock resets instead of stacking timers
	Register(name string)
	// Cancel stops a pending deletion, reporting whether one existed
	Cancel(name string) bool
}
