package worker

import (
	"context"
)

// Worker is the contract for all background workers.
type Worker interface {
	// Start runs the worker until its context is cancelled or Stop is
	// called.
	Start(ctx context.Context) error

	// Stop signals the worker to finish.
	Stop() error

	// Name returns the worker name.
	Name() string
}
