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

import "dirpx.dev/httpstatus/code"

// StatusError represents an error that is bound to exactly one HTTP status
// code.
//
// The code is the primary value that adapters use to decide which status to
// send to the client. Implementations must return a code in [100, 599].
type StatusError interface {
	error

	// StatusCode returns the HTTP status code of the error.
	StatusCode() int
}

// ClassifiedError is the family marker shared by all status errors.
//
// It lets callers branch on "client or server?" without enumerating every
// concrete kind:
//
//	var ce apis.ClassifiedError
//	if errors.As(err, &ce) && ce.Class() == code.ClassServerError {
//	    // page someone
//	}
type ClassifiedError interface {
	error

	// Class returns code.ClassClientError or code.ClassServerError.
	Class() code.Class
}

// DetailedError represents an error that exposes a shallow key/value payload.
//
// Implementations SHOULD return a map that the caller may read but not
// modify. Returning nil is allowed and simply means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() map[string]any
}
