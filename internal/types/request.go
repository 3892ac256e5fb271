// Package types defines the JSON shapes exchanged with relay callers.
package types

import "strings"

// DefaultUserID is reported when a caller omits userId.
const DefaultUserID = "user"

// CommandRequest is the POST body accepted by the relay endpoint.
type CommandRequest struct {
	Command string `json:"command"`
	UserID  string `json:"userId,omitempty"`
}

// Normalize fills in defaults. The command itself is left verbatim.
func (r *CommandRequest) Normalize() {
	if r.UserID == "" {
		r.UserID = DefaultUserID
	}
}

// HasCommand reports whether the command has any non-whitespace content.
func (r *CommandRequest) HasCommand() bool {
	return strings.TrimSpace(r.Command) != ""
}
