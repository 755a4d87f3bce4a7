/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpstatus

import (
	"errors"

	"dirpx.dev/httpstatus/apis"
	"dirpx.dev/httpstatus/code"
)

var (
	// ErrClientError matches every *Error of the client family (4xx).
	ErrClientError = errors.New("httpstatus: client error")

	// ErrServerError matches every *Error of the server family (5xx).
	ErrServerError = errors.New("httpstatus: server error")
)

var (
	_ apis.StatusError     = (*Error)(nil)
	_ apis.ClassifiedError = (*Error)(nil)
	_ apis.DetailedError   = (*Error)(nil)
	_ apis.ViewProvider    = (*Error)(nil)
)

// Error is a typed error bound to one client or server status code.
//
// It carries:
//   - kind: the variant, fixed at construction (code, family, name);
//   - Message: human-oriented description, "<code> <phrase>" by default;
//   - Details: arbitrary key/value payload (for logging / HTTP body);
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	kind Kind

	// Message is a human-readable explanation. It is what Error() returns.
	Message string

	// Details is an optional, shallow map of extra fields.
	// The map is treated as immutable: WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any).
	Cause error
}

// Error implements the built-in error interface. It returns the message
// unchanged, e.g. "404 Not Found".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

// Kind returns the variant of the error.
func (e *Error) Kind() Kind { return e.kind }

// StatusCode returns the HTTP status code of the error's kind.
func (e *Error) StatusCode() int { return int(e.kind.code) }

// Class returns the family of the error's kind.
func (e *Error) Class() code.Class { return e.kind.Family() }

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Is makes errors.Is match on kind and family rather than on identity:
//
//   - ErrClientError / ErrServerError match by family;
//   - any other *Error matches when both have the same kind, whatever the
//     messages are.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrClientError:
		return e.Class() == code.ClassClientError
	case ErrServerError:
		return e.Class() == code.ClassServerError
	}
	t, ok := target.(*Error)
	return ok && t != nil && t.kind == e.kind
}

// ErrorDetails implements apis.DetailedError.
func (e *Error) ErrorDetails() map[string]any { return e.Details }

// ErrorView implements apis.ViewProvider.
func (e *Error) ErrorView() apis.ErrorView {
	return apis.ErrorView{
		Code:    e.StatusCode(),
		Kind:    e.kind.name,
		Message: e.Message,
		Details: e.Details,
	}
}

// WithMessage returns a shallow copy of e with a replaced human message.
// Code and kind are unchanged. An empty msg restores the default message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	if msg == "" {
		msg = e.kind.message
	}
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with all provided kv merged into
// Details, kv taking precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
