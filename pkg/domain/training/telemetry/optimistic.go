package telemetry

// applyOptimistic reflects a just-sent command into the latest snapshot
// before the trainer acknowledges it, so operators see controls react
// immediately. The next real snapshot overwrites this guess.
//
// It is a pure function over the snapshot value.
func applyOptimistic(s ProgressSnapshot, cmd Command) ProgressSnapshot {
	switch cmd {
	case CommandPause:
		s.Status = StatusPaused
	case CommandResume:
		s.Status = StatusTraining
	case CommandStop:
		s.Status = StatusCompleted
	}
	return s
}
