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

package mapper

import (
	"fmt"
	"strings"

	"dirpx.dev/httpstatus/apis"
	"dirpx.dev/httpstatus/code"
	"dirpx.dev/httpstatus/mapper/internal/digittrie"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance; no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (both directions).
//  2. Apply user-provided options (defaults, overrides, pattern rules).
//  3. Validate every configured status code.
//  4. Normalize patterns and build a digit trie supporting longest-pattern-match
//     with 'x' as a single-digit wildcard.
//  5. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid patterns or status codes
// outside [100, 599].
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Every configured status must be a valid HTTP status code.
	for c := range b.grpcOverride {
		if err := code.Validate(c); err != nil {
			return nil, fmt.Errorf("mapper: invalid gRPC override: %w", err)
		}
	}
	for c := range b.grpcDefaults {
		if err := code.Validate(c); err != nil {
			return nil, fmt.Errorf("mapper: invalid gRPC default: %w", err)
		}
	}
	for g, c := range b.httpDefaults {
		if err := code.Validate(c); err != nil {
			return nil, fmt.Errorf("mapper: invalid HTTP default for %s: %w", g, err)
		}
	}

	// (4) Build the pattern trie.
	var trie *digittrie.Trie[codes.Code]
	if len(b.grpcPatterns) > 0 {
		trie = digittrie.New[codes.Code]()
		for _, r := range b.grpcPatterns {
			p := normalizePattern(r.pattern)
			if err := trie.Insert(p, r.val); err != nil {
				return nil, fmt.Errorf("mapper: invalid gRPC pattern %q: %w", r.pattern, err)
			}
		}
	}

	// (5) Freeze everything into a read-only snapshot.
	m := &mapper{
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		grpcOverride: freezeGRPC(b.grpcOverride),
		grpcTrie:     trie,
		httpDefault:  freezeHTTP(b.httpDefaults),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-code
// defaults, per-code exact overrides, and a digit trie for pattern rules.
// Lookups are O(1) plus one trie walk and safe for concurrent use once
// constructed.
type mapper struct {
	// grpcDefault holds the base gRPC code for a given HTTP status.
	// Used when no override and no pattern are present.
	grpcDefault map[code.Code]codes.Code

	// grpcOverride holds explicit gRPC codes for specific statuses.
	// These take precedence over patterns and defaults.
	grpcOverride map[code.Code]codes.Code

	// grpcTrie holds user pattern rules; nil when none were configured.
	grpcTrie *digittrie.Trie[codes.Code]

	// httpDefault holds the reverse table.
	httpDefault map[codes.Code]code.Code

	// fallbackHTTP is used when a gRPC code has no reverse entry.
	// Typically 500.
	fallbackHTTP code.Code

	// fallbackGRPC is used when nothing matched at all.
	// Typically codes.Unknown.
	fallbackGRPC codes.Code
}

// source names the tier that resolved a status, for Explain.
type source string

const (
	sourceOverride source = "override"
	sourcePattern  source = "pattern"
	sourceDefault  source = "default"
	sourceClass    source = "class"
	sourceFallback source = "fallback"
)

// GRPCStatus resolves a gRPC code for the given HTTP status.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. longest pattern match;
//  3. per-code default (library or user overridden);
//  4. per-class default;
//  5. hardcoded ultimate fallback (codes.Unknown).
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	v, _, _ := m.resolveGRPC(c)
	return v
}

func (m *mapper) resolveGRPC(c code.Code) (codes.Code, source, string) {
	// 1. Fast path: exact override for this code.
	if v, ok := m.grpcOverride[c]; ok {
		return v, sourceOverride, ""
	}

	// 2. Pattern LPM over the three digits.
	if m.grpcTrie != nil {
		if v, ok, pat := m.grpcTrie.MatchWithPattern(c.String()); ok {
			return v, sourcePattern, pat
		}
	}

	// 3. Per-code default.
	if v, ok := m.grpcDefault[c]; ok {
		return v, sourceDefault, ""
	}

	// 4. Per-class default.
	if v, ok := defaultClassGRPC[c.Class()]; ok {
		return v, sourceClass, ""
	}

	// 5. Ultimate fallback.
	return m.fallbackGRPC, sourceFallback, ""
}

// HTTPStatus resolves an HTTP status for the given gRPC code.
// The result is never zero: unknown codes map to 500.
func (m *mapper) HTTPStatus(g codes.Code) code.Code {
	if v, ok := m.httpDefault[g]; ok {
		return v
	}
	return m.fallbackHTTP
}

// Status resolves the gRPC side for an HTTP status and pairs them.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: int(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved the gRPC code
// for a particular HTTP status.
//
// Example output:
//
//	code=503 class="server_error"
//	grpc: source=pattern pattern="50" -> UNAVAILABLE(14)
//
// Notes:
//   - source ∈ {override | pattern | default | class | fallback}
//   - pattern is the rule as it was stored in the trie (trailing "x" dropped)
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%d class=%q\n", int(c), c.Class())

	v, src, pat := m.resolveGRPC(c)
	if src == sourcePattern {
		_, _ = fmt.Fprintf(&b, "grpc: source=%s pattern=%q -> %s(%d)", src, pat, grpcName(v), int(v))
	} else {
		_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s(%d)", src, grpcName(v), int(v))
	}
	return b.String()
}

func grpcName(g codes.Code) string {
	return strings.ToUpper(g.String())
}

// normalizePattern lowercases the pattern, trims surrounding spaces and
// drops trailing wildcards, so "5XX", "5xx" and "5" are the same rule.
// Structural checks are left to the trie.
func normalizePattern(raw string) string {
	p := strings.ToLower(strings.TrimSpace(raw))
	return strings.TrimRight(p, "x")
}
