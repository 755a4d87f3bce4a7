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
	"encoding"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Code is a range-checked HTTP status code.
//
// It is defined as a separate type (not just int) so that APIs can state
// explicitly that they expect a validated value, and so that raw user input is
// not mixed with codes that already passed the range check.
type Code int

// Min and Max bound the values accepted by Of, Parse and Validate.
//
// The bounds are the limits of the three-digit status-code space defined by
// RFC 9110, section 15: the first digit is 1 to 5.
const (
	// Min is the smallest valid status code.
	Min Code = 100

	// Max is the largest valid status code.
	Max Code = 599
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
	_ fmt.Stringer             = Code(0)
)

// Of range-checks an integer of any width and converts it to a Code.
//
// Values outside [Min, Max] produce an *InvalidArgumentError that reports the
// value exactly as the caller passed it.
func Of[T constraints.Integer](v T) (Code, error) {
	if v < 0 || uint64(v) < uint64(Min) || uint64(v) > uint64(Max) {
		return 0, &InvalidArgumentError{Value: fmt.Sprint(v)}
	}
	return Code(v), nil
}

// MustOf is the panic-on-error variant of Of. It is useful for
// package-level declarations.
func MustOf[T constraints.Integer](v T) Code {
	c, err := Of(v)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse takes a decimal string, trims surrounding spaces and range-checks it.
// Input that is not a base-10 integer is rejected as an invalid argument.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidArgumentError{Value: s}
	}
	return Of(v)
}

// Validate checks whether c lies in [Min, Max].
func Validate(c Code) error {
	_, err := Of(int(c))
	return err
}

// Class returns the class of the code, as given by its first digit.
// Codes outside [Min, Max] have no class.
func (c Code) Class() Class {
	if c < Min || c > Max {
		return ClassUnknown
	}
	return Class(c / 100)
}

// String returns the decimal representation of the code.
func (c Code) String() string {
	return strconv.Itoa(int(c))
}

// MarshalText implements encoding.TextMarshaler.
//
// It refuses to marshal codes outside [Min, Max].
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It parses and range-checks the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
