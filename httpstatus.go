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

	"dirpx.dev/httpstatus/code"
	"dirpx.dev/httpstatus/reason"
)

// ReasonPhrase returns the IANA reason phrase for c, e.g. "Not Found".
//
// It fails with *code.InvalidArgumentError when c is outside [100, 599] and
// with *code.OutOfRangeError when c is in range but unassigned.
func ReasonPhrase(c int) (string, error) {
	return reason.Phrase(c)
}

// ReasonMessage returns the longer description of c. It follows the same
// validation contract as ReasonPhrase.
func ReasonMessage(c int) (string, error) {
	return reason.Message(c)
}

// ReasonError returns a new *Error of the kind bound to c.
//
// Validation runs in two stages: the range check (*code.InvalidArgumentError),
// then the catalog check (*code.OutOfRangeError). Only the 39 client and
// server codes in the catalog have a kind, so assigned codes such as 204 or
// 302 are reported as out of range here.
//
// Usage:
//
//	e, err := httpstatus.ReasonError(404)
//	// e.Message == "404 Not Found"
//
//	e, err = httpstatus.ReasonError(409,
//	    httpstatus.WithMessageOption("version mismatch"),
//	    httpstatus.WithDetailOption("resource", "orders/42"),
//	)
func ReasonError(c int, opts ...Option) (*Error, error) {
	cd, err := code.Of(c)
	if err != nil {
		return nil, err
	}
	k, ok := kinds[cd]
	if !ok {
		return nil, &code.OutOfRangeError{Code: cd}
	}
	e := &Error{kind: k}
	for _, opt := range opts {
		e = opt(e)
	}
	if e.Message == "" {
		e.Message = k.message
	}
	return e, nil
}

// MustReasonError is the panic-on-error variant of ReasonError. It is useful
// for package-level declarations.
func MustReasonError(c int, opts ...Option) *Error {
	e, err := ReasonError(c, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// IsClientError reports whether err's chain contains a client-family *Error.
func IsClientError(err error) bool {
	return errors.Is(err, ErrClientError)
}

// IsServerError reports whether err's chain contains a server-family *Error.
func IsServerError(err error) bool {
	return errors.Is(err, ErrServerError)
}
