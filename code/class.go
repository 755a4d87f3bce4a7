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

package code

// Class groups status codes by their first digit (RFC 9110, section 15).
type Class uint8

const (
	// ClassUnknown is returned for values outside [Min, Max].
	ClassUnknown Class = iota
	// ClassInformational covers 1xx.
	ClassInformational
	// ClassSuccessful covers 2xx.
	ClassSuccessful
	// ClassRedirection covers 3xx.
	ClassRedirection
	// ClassClientError covers 4xx.
	ClassClientError
	// ClassServerError covers 5xx.
	ClassServerError
)

var classNames = [...]string{
	ClassUnknown:       "unknown",
	ClassInformational: "informational",
	ClassSuccessful:    "successful",
	ClassRedirection:   "redirection",
	ClassClientError:   "client_error",
	ClassServerError:   "server_error",
}

// String returns the lowercase, underscore-separated class name,
// e.g. "client_error".
func (c Class) String() string {
	if int(c) >= len(classNames) {
		return classNames[ClassUnknown]
	}
	return classNames[c]
}

// IsError reports whether the class is ClassClientError or ClassServerError.
func (c Class) IsError() bool {
	return c == ClassClientError || c == ClassServerError
}
