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

package httpstatus

import (
	"fmt"

	"dirpx.dev/httpstatus/code"
	"dirpx.dev/httpstatus/reason"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Kind identifies one of the client or server error variants. Each Kind is
// bound to exactly one status code.
//
// The zero Kind is not a valid kind; obtain kinds from KindOf, Kinds or
// (*Error).Kind.
type Kind struct {
	code    code.Code
	name    string
	message string
}

// Code returns the status code the kind is bound to.
func (k Kind) Code() code.Code { return k.code }

// Name returns the UPPER_SNAKE machine name, e.g. "NOT_FOUND".
func (k Kind) Name() string { return k.name }

// Family returns code.ClassClientError or code.ClassServerError.
func (k Kind) Family() code.Class { return k.code.Class() }

// DefaultMessage returns "<code> <reason phrase>", e.g. "404 Not Found".
func (k Kind) DefaultMessage() string { return k.message }

// String implements fmt.Stringer.
func (k Kind) String() string { return k.name }

// kinds is the error catalog: every client and server status registered
// with IANA, keyed by code.
var kinds = buildKinds(map[code.Code]string{
	code.BadRequest:                  "BAD_REQUEST",
	code.Unauthorized:                "UNAUTHORIZED",
	code.PaymentRequired:             "PAYMENT_REQUIRED",
	code.Forbidden:                   "FORBIDDEN",
	code.NotFound:                    "NOT_FOUND",
	code.MethodNotAllowed:            "METHOD_NOT_ALLOWED",
	code.NotAcceptable:               "NOT_ACCEPTABLE",
	code.ProxyAuthenticationRequired: "PROXY_AUTHENTICATION_REQUIRED",
	code.RequestTimeout:              "REQUEST_TIMEOUT",
	code.Conflict:                    "CONFLICT",
	code.Gone:                        "GONE",
	code.LengthRequired:              "LENGTH_REQUIRED",
	code.PreconditionFailed:          "PRECONDITION_FAILED",
	code.ContentTooLarge:             "CONTENT_TOO_LARGE",
	code.URITooLong:                  "URI_TOO_LONG",
	code.UnsupportedMediaType:        "UNSUPPORTED_MEDIA_TYPE",
	code.RangeNotSatisfiable:         "RANGE_NOT_SATISFIABLE",
	code.ExpectationFailed:           "EXPECTATION_FAILED",
	code.MisdirectedRequest:          "MISDIRECTED_REQUEST",
	code.UnprocessableContent:        "UNPROCESSABLE_CONTENT",
	code.Locked:                      "LOCKED",
	code.FailedDependency:            "FAILED_DEPENDENCY",
	code.TooEarly:                    "TOO_EARLY",
	code.UpgradeRequired:             "UPGRADE_REQUIRED",
	code.PreconditionRequired:        "PRECONDITION_REQUIRED",
	code.TooManyRequests:             "TOO_MANY_REQUESTS",
	code.RequestHeaderFieldsTooLarge: "REQUEST_HEADER_FIELDS_TOO_LARGE",
	code.UnavailableForLegalReasons:  "UNAVAILABLE_FOR_LEGAL_REASONS",

	code.InternalServerError:           "INTERNAL_SERVER_ERROR",
	code.NotImplemented:                "NOT_IMPLEMENTED",
	code.BadGateway:                    "BAD_GATEWAY",
	code.ServiceUnavailable:            "SERVICE_UNAVAILABLE",
	code.GatewayTimeout:                "GATEWAY_TIMEOUT",
	code.HTTPVersionNotSupported:       "HTTP_VERSION_NOT_SUPPORTED",
	code.VariantAlsoNegotiates:         "VARIANT_ALSO_NEGOTIATES",
	code.InsufficientStorage:           "INSUFFICIENT_STORAGE",
	code.LoopDetected:                  "LOOP_DETECTED",
	code.NotExtended:                   "NOT_EXTENDED",
	code.NetworkAuthenticationRequired: "NETWORK_AUTHENTICATION_REQUIRED",
})

// buildKinds derives the default messages from the status table. A kind
// bound to an unassigned or non-error code is a programming error and
// panics at init.
func buildKinds(names map[code.Code]string) map[code.Code]Kind {
	out := make(map[code.Code]Kind, len(names))
	for c, name := range names {
		e, ok := reason.Lookup(c)
		if !ok || !c.Class().IsError() {
			panic(fmt.Sprintf("httpstatus: kind %s bound to code %d without an error phrase", name, c))
		}
		out[c] = Kind{code: c, name: name, message: fmt.Sprintf("%d %s", int(c), e.Phrase)}
	}
	return out
}

// KindOf returns the kind bound to c, if any.
func KindOf(c code.Code) (Kind, bool) {
	k, ok := kinds[c]
	return k, ok
}

// Kinds returns every kind in ascending code order.
func Kinds() []Kind {
	cs := sets.List(sets.KeySet(kinds))
	out := make([]Kind, 0, len(cs))
	for _, c := range cs {
		out = append(out, kinds[c])
	}
	return out
}
