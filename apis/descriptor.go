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

// ErrorDescriptor is a flat, transport-friendly description of a status
// error, intended for structured logging, tracing, or message bus
// propagation.
//
// This type intentionally uses plain strings and ints (not the code.Code or
// httpstatus.Kind value types) so that it can be used by adapters without
// importing the concrete implementation.
type ErrorDescriptor struct {
	// Kind is the UPPER_SNAKE name of the error kind, e.g. "NOT_FOUND".
	Kind string `json:"kind"`

	// Family is "client_error" or "server_error".
	Family string `json:"family"`

	// Phrase is the IANA reason phrase of HTTPStatus, e.g. "Not Found".
	Phrase string `json:"phrase,omitempty"`

	// HTTPStatus is the HTTP status of the error.
	HTTPStatus int `json:"http_status"`

	// GRPCCode is the gRPC status code (as integer) resolved by a Mapper.
	GRPCCode int `json:"grpc_code"`

	// Message is the message carried by the error instance.
	Message string `json:"message,omitempty"`
}
