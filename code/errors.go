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

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument matches every error produced by the range check,
	// i.e. values that are not status codes at all.
	ErrInvalidArgument = errors.New("httpstatus: invalid argument")

	// ErrOutOfRange matches every error produced by the assignment check,
	// i.e. status codes that the consulted table does not know.
	ErrOutOfRange = errors.New("httpstatus: out of range")
)

// InvalidArgumentError reports a value outside [Min, Max] or input that is
// not a number.
type InvalidArgumentError struct {
	// Value is the rejected input, formatted exactly as received.
	Value string
}

// Error implements the built-in error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("Invalid http status code: `%s`. Status code must be between %d and %d.", e.Value, Min, Max)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// OutOfRangeError reports a code that is in range but has no entry in the
// table that was consulted.
type OutOfRangeError struct {
	Code Code
}

// Error implements the built-in error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("Unknown http status code: `%d`.", int(e.Code))
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
