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

package digittrie

import "errors"

// Trie is a digit-aware pattern index for three-digit status codes.
// Each node represents one digit position; the wildcard 'x' matches exactly
// one digit. The trie supports longest-pattern-match (LPM), so a pattern
// that pins more positions wins over a shorter one.
type Trie[T any] struct {
	// children contains next digits, including 'x' for a single-digit wildcard.
	children map[byte]*Trie[T]
	// hasVal marks that this node carries a value for the pattern ending here.
	hasVal bool
	val    T
	// pattern is the pattern as inserted, set only when hasVal=true. It is
	// used by MatchWithPattern for Explain(), so we don't build strings
	// during lookup.
	pattern string
}

// KeyLength is the length of every key passed to Match.
const KeyLength = 3

const wildcard = 'x'

var (
	// ErrInvalidPattern is returned when inserting a pattern that is empty,
	// longer than KeyLength, contains characters other than digits and 'x',
	// starts with a digit outside 1-5, or consists only of wildcards.
	ErrInvalidPattern = errors.New("digittrie: invalid pattern")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[byte]*Trie[T])}
}

// Insert adds a pattern to the trie and associates it with val.
//
// Examples:
//
//	"5"    all 5xx codes
//	"40"   400-409
//	"4x9"  409, 419, ..., 499
//	"503"  exactly 503
//
// Re-inserting a pattern replaces its value.
func (t *Trie[T]) Insert(pattern string, val T) error {
	if t == nil || !validPattern(pattern) {
		return ErrInvalidPattern
	}

	cur := t
	for i := 0; i < len(pattern); i++ {
		d := pattern[i]
		child, exists := cur.children[d]
		if !exists {
			child = New[T]()
			cur.children[d] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = pattern
	return nil
}

// Match finds the best (deepest) pattern for a three-digit key.
// Both exact digit matches and 'x' wildcard branches are explored; at equal
// depth the exact branch wins.
// It returns (value, true) on success. If the key is not three digits or
// nothing matches, it returns the zero value and false.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern returns value + the stored pattern for Explain().
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil || !validKey(key) {
		return zero, false, ""
	}
	bestDepth := 0
	var best *Trie[T]

	var dfs func(n *Trie[T], depth int)
	dfs = func(n *Trie[T], depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			best = n
		}
		if depth == len(key) {
			return
		}
		// exact branch first so it wins ties
		if next, ok := n.children[key[depth]]; ok {
			dfs(next, depth+1)
		}
		if next, ok := n.children[wildcard]; ok {
			dfs(next, depth+1)
		}
	}

	dfs(t, 0)
	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// validPattern reports whether p is 1..KeyLength characters of [0-9x] with
// at least one digit, and a first digit (if pinned) in 1-5.
func validPattern(p string) bool {
	if len(p) == 0 || len(p) > KeyLength {
		return false
	}
	if p[0] != wildcard && (p[0] < '1' || p[0] > '5') {
		return false
	}
	allWild := true
	for i := 0; i < len(p); i++ {
		c := p[i]
		switch {
		case c == wildcard:
		case c >= '0' && c <= '9':
			allWild = false
		default:
			return false
		}
	}
	return !allWild
}

// validKey reports whether k is exactly KeyLength decimal digits.
func validKey(k string) bool {
	if len(k) != KeyLength {
		return false
	}
	for i := 0; i < len(k); i++ {
		if k[i] < '0' || k[i] > '9' {
			return false
		}
	}
	return true
}
