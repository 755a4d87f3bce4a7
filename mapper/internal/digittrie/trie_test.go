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

import "testing"

func TestInsertAndMatch_Simple(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("5", 13))
	must(t, tr.Insert("50", 14))
	must(t, tr.Insert("404", 5))

	if v, ok, p := tr.MatchWithPattern("503"); !ok || v != 14 || p != "50" {
		t.Fatalf("match 503 => ok=%v v=%v p=%q; want ok=true v=14 p=50", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("511"); !ok || v != 13 || p != "5" {
		t.Fatalf("match 511 => ok=%v v=%v p=%q; want ok=true v=13 p=5", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("404"); !ok || v != 5 || p != "404" {
		t.Fatalf("match 404 => ok=%v v=%v p=%q; want ok=true v=5 p=404", ok, v, p)
	}
	if _, ok := tr.Match("405"); ok {
		t.Fatalf("405 must not match")
	}
}

func TestWildcard_OneDigit(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("4x9", 498))
	must(t, tr.Insert("409", 6)) // exact should beat wildcard at same depth

	if v, ok, p := tr.MatchWithPattern("409"); !ok || v != 6 || p != "409" {
		t.Fatalf("exact must win over wildcard, got ok=%v v=%v p=%q", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("499"); !ok || v != 498 || p != "4x9" {
		t.Fatalf("wildcard match failed: ok=%v v=%v p=%q", ok, v, p)
	}
	if _, ok := tr.Match("498"); ok {
		t.Fatalf("wildcard must match exactly one digit position")
	}
}

func TestLPM_PrefersDeeperEvenIfExactBranchExists(t *testing.T) {
	tr := New[int]()
	// wildcard path can produce deeper match than an existing (but shallow) exact branch
	must(t, tr.Insert("4x9", 7))
	must(t, tr.Insert("40", 1))

	if v, ok, p := tr.MatchWithPattern("409"); !ok || v != 7 || p != "4x9" {
		t.Fatalf("LPM must choose wildcard path: ok=%v v=%v p=%q", ok, v, p)
	}
	if v, ok := tr.Match("401"); !ok || v != 1 {
		t.Fatalf("401 must fall back to 40: ok=%v v=%v", ok, v)
	}
}

func TestInsert_Replaces(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("5", 1))
	must(t, tr.Insert("5", 2))
	if v, _ := tr.Match("500"); v != 2 {
		t.Fatalf("re-insert must replace, got %d", v)
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "x", "xxx", "5000", "6", "0", "4a", "4-", "X04"} {
		if err := tr.Insert(p, 1); err != ErrInvalidPattern {
			t.Fatalf("Insert(%q) error = %v, want ErrInvalidPattern", p, err)
		}
	}
	must(t, tr.Insert("x04", 1))

	for _, k := range []string{"", "04", "4040", "a04", "40 "} {
		if _, ok, _ := tr.MatchWithPattern(k); ok {
			t.Fatalf("match should be false for invalid key %q", k)
		}
	}
	if v, ok := tr.Match("504"); !ok || v != 1 {
		t.Fatalf("leading wildcard pattern must match 504")
	}

	var nilTrie *Trie[int]
	if err := nilTrie.Insert("5", 1); err != ErrInvalidPattern {
		t.Fatalf("nil trie insert must fail")
	}
	if _, ok := nilTrie.Match("500"); ok {
		t.Fatalf("nil trie must not match")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
