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

type patternRule struct {
	// pattern is the raw digit pattern (may contain "x").
	// It is validated/normalized when we build the trie.
	pattern string
	// val is the gRPC code to apply when this pattern matches.
	val codes.Code
}

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// grpcDefaults holds per-code gRPC defaults that override library defaults.
	grpcDefaults map[code.Code]codes.Code
	// grpcOverride holds exact per-code gRPC overrides (higher than patterns).
	grpcOverride map[code.Code]codes.Code
	// grpcPatterns holds LPM rules, later compiled into a digit trie.
	grpcPatterns []patternRule

	// httpDefaults holds the reverse table, gRPC code -> HTTP status.
	httpDefaults map[codes.Code]code.Code

	// global fallbacks used when nothing else matched.
	fallbackHTTP code.Code
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		// we size the maps roughly to the number of built-in defaults
		grpcDefaults: make(map[code.Code]codes.Code, len(defaultGRPC)),
		httpDefaults: make(map[codes.Code]code.Code, len(defaultHTTP)),

		// overrides are usually few
		grpcOverride: make(map[code.Code]codes.Code),

		fallbackHTTP: code.InternalServerError,
		fallbackGRPC: codes.Unknown,
	}
}
