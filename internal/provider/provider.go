// Package provider defines the upstream chat client contract and its errors.
package provider

import (
	"context"
	"errors"
)

// ChatClient turns one user command into one generated reply.
type ChatClient interface {
	// Model returns the upstream model identifier replies are generated with.
	Model() string

	// Complete sends command as a single user turn and returns the reply text.
	// It makes exactly one attempt.
	Complete(ctx context.Context, command string) (string, error)
}

// Kind classifies a failure at the upstream boundary.
type Kind string

// Error kinds
const (
	KindConfiguration Kind = "configuration"
	KindTransport     Kind = "transport"
	KindUpstream      Kind = "upstream"
	KindShape         Kind = "shape"
)

// Error is returned by ChatClient implementations. Detail is the
// human-readable text surfaced to callers.
type Error struct {
	Kind       Kind
	Detail     string
	StatusCode int // upstream HTTP status, KindUpstream only
	Err        error
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind and detail, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Detail == e.Detail
}

// ErrNotConfigured is returned when no API key is available.
var ErrNotConfigured = &Error{Kind: KindConfiguration, Detail: "Groq API key not configured"}

// KindOf reports the kind of err, or "" when err did not come from a ChatClient.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
