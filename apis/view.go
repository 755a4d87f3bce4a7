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

package apis

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
//
// The returned view MUST be safe to marshal (to JSON/proto) and SHOULD contain
// all information that is safe to disclose to the client.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable representation of a status error.
//
// This is *not* the concrete error type used internally; it is the shape that
// we are comfortable exposing over the wire or logging.
type ErrorView struct {
	// Code is the HTTP status code, e.g. 404.
	Code int `json:"code"`

	// Kind is the UPPER_SNAKE kind name, e.g. "NOT_FOUND".
	Kind string `json:"kind"`

	// Message is the error's own message, "<code> <phrase>" unless the
	// caller overrode it.
	Message string `json:"message,omitempty"`

	// Details is an optional, shallow key/value payload.
	Details map[string]any `json:"details,omitempty"`
}
