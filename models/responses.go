package models

// OperationResult is the UI-facing outcome of a state-changing operation.
// The UI is expected to display Message verbatim; Success only selects
// the presentation styling (success vs. error toast).
type OperationResult struct {
	// Success reports whether the operation completed.
	Success bool `json:"success"`

	// Message is the human-readable outcome description.
	Message string `json:"message"`
}

// ToggleResult is the outcome of an activate/deactivate operation.
// It extends OperationResult with the new active state of the target
// account so the UI can redraw without a second lookup.
type ToggleResult struct {
	OperationResult

	// Active is the target's active flag after the toggle.
	Active bool `json:"ativo"`
}
