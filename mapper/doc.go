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

// Package mapper provides deterministic, immutable mappings between HTTP
// status codes (dirpx.dev/httpstatus/code) and gRPC status codes.
//
// # Overview
//
// Services that speak both HTTP and gRPC need one answer to "which gRPC code
// is this 404?" and the reverse "which HTTP status is this NOT_FOUND?".
// Package mapper gives that answer in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per status code;
//   - pattern-aware: callers can add rules for whole ranges of codes.
//
// # Resolution model
//
// For HTTP → gRPC a Mapper resolves in the following order:
//
//  1. exact override for the status code;
//  2. longest pattern match over user pattern rules;
//  3. per-code default (library or user-adjusted);
//  4. per-class default (2xx OK, 4xx FAILED_PRECONDITION, 5xx INTERNAL);
//  5. global fallback (codes.Unknown).
//
// Patterns are one to three characters over [0-9x]; "x" matches exactly one
// digit and trailing "x"s are dropped, so "5xx" and "5" are the same rule.
// For example:
//
//	WithGRPCPattern("50x", codes.Unavailable)  // 500-509
//	WithGRPCPattern("4x9", codes.Aborted)      // 409, 419, ..., 499
//
// The pattern that pins more digits wins.
//
// For gRPC → HTTP the library ships a reverse table close to grpc-gateway's;
// unknown gRPC codes fall back to 500.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithGRPCOverride(code.Conflict, codes.AlreadyExists),
//	    mapper.WithGRPCPattern("50x", codes.Unavailable),
//	)
//	if err != nil {
//	    // invalid pattern, etc.
//	}
//
//	st := m.Status(code.ServiceUnavailable)
//	// st.HTTP == 503, st.GRPC == codes.Unavailable
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a status code was
// resolved, including which tier matched and, for patterns, which pattern was
// used. It is intended for inspection and logging, not for machine parsing.
package mapper
