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

package reason

import (
	"dirpx.dev/httpstatus/code"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Entry holds both texts registered for one status code.
type Entry struct {
	Code    code.Code
	Phrase  string
	Message string
}

// assigned is the key set shared by phrases and messages.
var assigned = sets.KeySet(phrases)

// Phrase returns the IANA reason phrase for c, e.g. "Not Found" for 404.
//
// It fails with *code.InvalidArgumentError when c is outside [100, 599] and
// with *code.OutOfRangeError when c is in range but unassigned (e.g. 509).
func Phrase(c int) (string, error) {
	cd, err := lookup(c)
	if err != nil {
		return "", err
	}
	return phrases[cd], nil
}

// Message returns the longer description of c. It follows the same
// validation contract as Phrase.
func Message(c int) (string, error) {
	cd, err := lookup(c)
	if err != nil {
		return "", err
	}
	return messages[cd], nil
}

// Lookup returns both texts for an already validated code.
func Lookup(c code.Code) (Entry, bool) {
	p, ok := phrases[c]
	if !ok {
		return Entry{}, false
	}
	return Entry{Code: c, Phrase: p, Message: messages[c]}, true
}

// Known reports whether c is an assigned status code.
func Known(c code.Code) bool {
	return assigned.Has(c)
}

// Codes returns every assigned status code in ascending order.
// The returned slice is a fresh copy owned by the caller.
func Codes() []code.Code {
	return sets.List(assigned)
}

// lookup runs the range check, then the assignment check.
func lookup(c int) (code.Code, error) {
	cd, err := code.Of(c)
	if err != nil {
		return 0, err
	}
	if !assigned.Has(cd) {
		return 0, &code.OutOfRangeError{Code: cd}
	}
	return cd, nil
}
