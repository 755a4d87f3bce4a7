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

// defaultGRPC defines the library's built-in gRPC mappings for HTTP statuses
// that have an obvious canonical counterpart. Everything else is resolved by
// class (see defaultClassGRPC).
var defaultGRPC = map[code.Code]codes.Code{
	code.OK: codes.OK,

	// 4xx: client/protocol/resource issues.
	code.BadRequest:          codes.InvalidArgument,
	code.Unauthorized:        codes.Unauthenticated,
	code.Forbidden:           codes.PermissionDenied,
	code.NotFound:            codes.NotFound,
	code.MethodNotAllowed:    codes.Unimplemented,
	code.RequestTimeout:      codes.DeadlineExceeded,
	code.Conflict:            codes.Aborted,  // General conflict (concurrent updates, etc.).
	code.Gone:                codes.NotFound, // gRPC has no 410; NotFound is the closest practical choice.
	code.PreconditionFailed:  codes.FailedPrecondition,
	code.ContentTooLarge:     codes.ResourceExhausted,
	code.RangeNotSatisfiable: codes.OutOfRange,
	code.TooManyRequests:     codes.ResourceExhausted,
	// Note: 499 is a non-standard but widely used code (nginx) for "client closed request".
	499: codes.Canceled,

	// 5xx: server / dependency / transient issues.
	code.InternalServerError: codes.Internal,
	code.NotImplemented:      codes.Unimplemented,
	code.BadGateway:          codes.Unavailable,
	code.ServiceUnavailable:  codes.Unavailable,
	code.GatewayTimeout:      codes.DeadlineExceeded,
	code.InsufficientStorage: codes.ResourceExhausted,
}

// defaultClassGRPC is consulted when a status has no per-code entry.
var defaultClassGRPC = map[code.Class]codes.Code{
	code.ClassSuccessful:  codes.OK,
	code.ClassClientError: codes.FailedPrecondition,
	code.ClassServerError: codes.Internal,
}

// defaultHTTP is the reverse table: one HTTP status per gRPC code.
// Canceled maps to 408 rather than nginx's 499 so that it stays a registered
// status with a catalog kind.
var defaultHTTP = map[codes.Code]code.Code{
	codes.OK:                 code.OK,
	codes.Canceled:           code.RequestTimeout,
	codes.Unknown:            code.InternalServerError,
	codes.InvalidArgument:    code.BadRequest,
	codes.DeadlineExceeded:   code.GatewayTimeout,
	codes.NotFound:           code.NotFound,
	codes.AlreadyExists:      code.Conflict,
	codes.PermissionDenied:   code.Forbidden,
	codes.ResourceExhausted:  code.TooManyRequests,
	codes.FailedPrecondition: code.BadRequest,
	codes.Aborted:            code.Conflict,
	codes.OutOfRange:         code.BadRequest,
	codes.Unimplemented:      code.NotImplemented,
	codes.Internal:           code.InternalServerError,
	codes.Unavailable:        code.ServiceUnavailable,
	codes.DataLoss:           code.InternalServerError,
	codes.Unauthenticated:    code.Unauthorized,
}
