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
	"dirpx.dev/httpstatus/code"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithGRPCDefault sets or replaces the library-level default gRPC code
// for the given HTTP status. It sits below overrides and pattern rules.
func WithGRPCDefault(c code.Code, g codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[c] = g }
}

// WithGRPCOverride registers an exact gRPC code for the given HTTP status.
// Overrides take precedence over every other rule.
func WithGRPCOverride(c code.Code, g codes.Code) Option {
	return func(b *builder) { b.grpcOverride[c] = g }
}

// WithGRPCPattern adds a longest-pattern-match rule over the three digits of
// the HTTP status. A pattern pinning more digits wins. Use "x" to match a
// single digit.
func WithGRPCPattern(pattern string, g codes.Code) Option {
	return func(b *builder) { b.grpcPatterns = append(b.grpcPatterns, patternRule{pattern, g}) }
}

// WithHTTPDefault sets or replaces the HTTP status returned for a gRPC code.
func WithHTTPDefault(g codes.Code, c code.Code) Option {
	return func(b *builder) { b.httpDefaults[g] = c }
}
