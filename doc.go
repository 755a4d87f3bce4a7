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

// Package httpstatus looks up HTTP status codes and builds typed errors for
// them.
//
// Three operations make up the public surface:
//
//	phrase, err := httpstatus.ReasonPhrase(404)   // "Not Found"
//	msg, err := httpstatus.ReasonMessage(404)     // longer description
//	e, err := httpstatus.ReasonError(404)         // *Error, "404 Not Found"
//
// All three validate their input in the same order: values outside
// [100, 599] fail with *code.InvalidArgumentError, values in range but
// unknown to the consulted table fail with *code.OutOfRangeError.
//
// # Error kinds
//
// ReasonError consults a narrower catalog than the status table: only the
// 39 client (4xx) and server (5xx) codes registered with IANA have a Kind.
// ReasonError(204) therefore fails with *code.OutOfRangeError even though
// ReasonPhrase(204) succeeds.
//
// Every *Error can be matched three ways:
//
//	errors.Is(err, httpstatus.ErrNotFound)    // exact kind
//	errors.Is(err, httpstatus.ErrClientError) // family
//
//	var se apis.StatusError                   // any status error
//	errors.As(err, &se)
//
// # Immutability
//
// The tables are initialised once and never written afterwards. *Error
// helpers (WithMessage, WithDetail, ...) return shallow copies, so sentinel
// values and errors returned to callers can be shared freely across
// goroutines.
package httpstatus
