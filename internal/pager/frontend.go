package pager

import (
	"context"
	"errors"
	"log/slog"
)

// ErrPromptTimeout is returned by Frontend.PromptPageNumber when the
// sub-dialog is abandoned within its bounded wait.
var ErrPromptTimeout = errors.New("prompt timed out")

// MessageRef is an opaque handle to rendered output, used to edit it in
// place. Its concrete type belongs to the Frontend implementation.
type MessageRef any

// Frontend delivers rendered pages to the interactive caller. Implementations
// live in the platform glue, outside this package.
type Frontend interface {
	// Send creates a new message from the spec and returns its handle.
	Send(ctx context.Context, spec RenderSpec) (MessageRef, error)

	// Edit replaces a previously sent message in place.
	Edit(ctx context.Context, ref MessageRef, spec RenderSpec) error

	// Notify delivers a short ephemeral notice to one caller.
	Notify(ctx context.Context, callerID, message string) error

	// PromptPageNumber opens the jump sub-dialog and blocks until the caller
	// submits a value or the bounded wait elapses, in which case it returns
	// ErrPromptTimeout.
	PromptPageNumber(ctx context.Context, placeholder string) (string, error)
}

// ErrorSink receives errors from delivery paths that have no caller left to
// report to (failed notices, failed terminal renders).
type ErrorSink interface {
	ReportError(ctx context.Context, err error)
}

type slogSink struct {
	log *slog.Logger
}

// NewSlogSink returns an ErrorSink that logs through the given logger.
func NewSlogSink(log *slog.Logger) ErrorSink {
	return &slogSink{log: log}
}

func (s *slogSink) ReportError(ctx context.Context, err error) {
	s.log.ErrorContext(ctx, "pager delivery error", slog.String("error", err.Error()))
}
