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

import "dirpx.dev/httpstatus/code"

// Sentinel errors, one per kind, carrying the default message.
//
// They are meant for errors.Is, which matches any *Error of the same kind:
//
//	if errors.Is(err, httpstatus.ErrNotFound) { ... }
//
// Do not return them directly when a custom message or details are needed;
// derive a copy with WithMessage / WithDetail instead.

// Client family (4xx).
var (
	ErrBadRequest                  = sentinel(code.BadRequest)
	ErrUnauthorized                = sentinel(code.Unauthorized)
	ErrPaymentRequired             = sentinel(code.PaymentRequired)
	ErrForbidden                   = sentinel(code.Forbidden)
	ErrNotFound                    = sentinel(code.NotFound)
	ErrMethodNotAllowed            = sentinel(code.MethodNotAllowed)
	ErrNotAcceptable               = sentinel(code.NotAcceptable)
	ErrProxyAuthenticationRequired = sentinel(code.ProxyAuthenticationRequired)
	ErrRequestTimeout              = sentinel(code.RequestTimeout)
	ErrConflict                    = sentinel(code.Conflict)
	ErrGone                        = sentinel(code.Gone)
	ErrLengthRequired              = sentinel(code.LengthRequired)
	ErrPreconditionFailed          = sentinel(code.PreconditionFailed)
	ErrContentTooLarge             = sentinel(code.ContentTooLarge)
	ErrURITooLong                  = sentinel(code.URITooLong)
	ErrUnsupportedMediaType        = sentinel(code.UnsupportedMediaType)
	ErrRangeNotSatisfiable         = sentinel(code.RangeNotSatisfiable)
	ErrExpectationFailed           = sentinel(code.ExpectationFailed)
	ErrMisdirectedRequest          = sentinel(code.MisdirectedRequest)
	ErrUnprocessableContent        = sentinel(code.UnprocessableContent)
	ErrLocked                      = sentinel(code.Locked)
	ErrFailedDependency            = sentinel(code.FailedDependency)
	ErrTooEarly                    = sentinel(code.TooEarly)
	ErrUpgradeRequired             = sentinel(code.UpgradeRequired)
	ErrPreconditionRequired        = sentinel(code.PreconditionRequired)
	ErrTooManyRequests             = sentinel(code.TooManyRequests)
	ErrRequestHeaderFieldsTooLarge = sentinel(code.RequestHeaderFieldsTooLarge)
	ErrUnavailableForLegalReasons  = sentinel(code.UnavailableForLegalReasons)
)

// Server family (5xx).
var (
	ErrInternalServerError           = sentinel(code.InternalServerError)
	ErrNotImplemented                = sentinel(code.NotImplemented)
	ErrBadGateway                    = sentinel(code.BadGateway)
	ErrServiceUnavailable            = sentinel(code.ServiceUnavailable)
	ErrGatewayTimeout                = sentinel(code.GatewayTimeout)
	ErrHTTPVersionNotSupported       = sentinel(code.HTTPVersionNotSupported)
	ErrVariantAlsoNegotiates         = sentinel(code.VariantAlsoNegotiates)
	ErrInsufficientStorage           = sentinel(code.InsufficientStorage)
	ErrLoopDetected                  = sentinel(code.LoopDetected)
	ErrNotExtended                   = sentinel(code.NotExtended)
	ErrNetworkAuthenticationRequired = sentinel(code.NetworkAuthenticationRequired)
)

func sentinel(c code.Code) *Error {
	k, ok := kinds[c]
	if !ok {
		panic(&code.OutOfRangeError{Code: c})
	}
	return &Error{kind: k, Message: k.message}
}
