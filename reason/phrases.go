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

package reason

import "dirpx.dev/httpstatus/code"

// phrases holds the reason phrases from the IANA HTTP Status Code Registry.
var phrases = map[code.Code]string{
	code.Continue:           "Continue",
	code.SwitchingProtocols: "Switching Protocols",
	code.Processing:         "Processing",
	code.EarlyHints:         "Early Hints",

	code.OK:                          "OK",
	code.Created:                     "Created",
	code.Accepted:                    "Accepted",
	code.NonAuthoritativeInformation: "Non-Authoritative Information",
	code.NoContent:                   "No Content",
	code.ResetContent:                "Reset Content",
	code.PartialContent:              "Partial Content",
	code.MultiStatus:                 "Multi-Status",
	code.AlreadyReported:             "Already Reported",
	code.IMUsed:                      "IM Used",

	code.MultipleChoices:   "Multiple Choices",
	code.MovedPermanently:  "Moved Permanently",
	code.Found:             "Found",
	code.SeeOther:          "See Other",
	code.NotModified:       "Not Modified",
	code.UseProxy:          "Use Proxy",
	code.TemporaryRedirect: "Temporary Redirect",
	code.PermanentRedirect: "Permanent Redirect",

	code.BadRequest:                  "Bad Request",
	code.Unauthorized:                "Unauthorized",
	code.PaymentRequired:             "Payment Required",
	code.Forbidden:                   "Forbidden",
	code.NotFound:                    "Not Found",
	code.MethodNotAllowed:            "Method Not Allowed",
	code.NotAcceptable:               "Not Acceptable",
	code.ProxyAuthenticationRequired: "Proxy Authentication Required",
	code.RequestTimeout:              "Request Timeout",
	code.Conflict:                    "Conflict",
	code.Gone:                        "Gone",
	code.LengthRequired:              "Length Required",
	code.PreconditionFailed:          "Precondition Failed",
	code.ContentTooLarge:             "Content Too Large",
	code.URITooLong:                  "URI Too Long",
	code.UnsupportedMediaType:        "Unsupported Media Type",
	code.RangeNotSatisfiable:         "Range Not Satisfiable",
	code.ExpectationFailed:           "Expectation Failed",
	code.MisdirectedRequest:          "Misdirected Request",
	code.UnprocessableContent:        "Unprocessable Content",
	code.Locked:                      "Locked",
	code.FailedDependency:            "Failed Dependency",
	code.TooEarly:                    "Too Early",
	code.UpgradeRequired:             "Upgrade Required",
	code.PreconditionRequired:        "Precondition Required",
	code.TooManyRequests:             "Too Many Requests",
	code.RequestHeaderFieldsTooLarge: "Request Header Fields Too Large",
	code.UnavailableForLegalReasons:  "Unavailable For Legal Reasons",

	code.InternalServerError:           "Internal Server Error",
	code.NotImplemented:                "Not Implemented",
	code.BadGateway:                    "Bad Gateway",
	code.ServiceUnavailable:            "Service Unavailable",
	code.GatewayTimeout:                "Gateway Timeout",
	code.HTTPVersionNotSupported:       "HTTP Version Not Supported",
	code.VariantAlsoNegotiates:         "Variant Also Negotiates",
	code.InsufficientStorage:           "Insufficient Storage",
	code.LoopDetected:                  "Loop Detected",
	code.NotExtended:                   "Not Extended",
	code.NetworkAuthenticationRequired: "Network Authentication Required",
}
