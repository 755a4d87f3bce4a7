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

package apis

import (
	"dirpx.dev/httpstatus/code"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the transport mapping
// rules. It translates HTTP status codes into gRPC status codes and back.
type Mapper interface {
	// GRPCStatus returns the gRPC status code for the given HTTP status.
	// Implementations must always return a value, falling back to
	// codes.Unknown when no rule matches.
	GRPCStatus(c code.Code) codes.Code

	// HTTPStatus returns the HTTP status that best represents a gRPC code.
	// Implementations must always return a code in [100, 599].
	HTTPStatus(g codes.Code) code.Code

	// Status resolves both transports for a single HTTP status.
	Status(c code.Code) Status

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(c code.Code) string
}

// Status represents a resolved pair of transport statuses for a single error.
// It is the final output of the mapper and can be written directly to HTTP/gRPC.
type Status struct {
	HTTP int        // HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
