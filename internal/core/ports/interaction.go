package ports

import "context"

// ProgressIndicator shows the user that a slow operation is underway.
//
//go:generate mockgen -source=interaction.go -destination=mocks/mock_interaction.go -package=mocks
type ProgressIndicator interface {
	// Start begins rendering in the background.
	// The returned stop function clears the indicator and blocks until it has exited.
	Start(ctx context.Context) (stop func())
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	// Confirm shows prompt and reports whether the user accepted.
	Confirm(prompt string) (bool, error)
}
