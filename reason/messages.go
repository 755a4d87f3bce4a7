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

// messages holds one descriptive sentence per assigned status code.
// The key set must stay identical to phrases.
var messages = map[code.Code]string{
	code.Continue:           "The server has received the request headers and the client should proceed to send the request body.",
	code.SwitchingProtocols: "The requester has asked the server to switch protocols and the server has agreed to do so.",
	code.Processing:         "The server has received and is processing the request, but no response is available yet.",
	code.EarlyHints:         "Used to return some response headers before the final HTTP message.",

	code.OK:                          "Standard response for successful HTTP requests.",
	code.Created:                     "The request has been fulfilled, resulting in the creation of a new resource.",
	code.Accepted:                    "The request has been accepted for processing, but the processing has not been completed.",
	code.NonAuthoritativeInformation: "The server is a transforming proxy that received a 200 OK from its origin, but is returning a modified version of the origin's response.",
	code.NoContent:                   "The server successfully processed the request and is not returning any content.",
	code.ResetContent:                "The server successfully processed the request, asks that the requester reset its document view, and is not returning any content.",
	code.PartialContent:              "The server is delivering only part of the resource due to a range header sent by the client.",
	code.MultiStatus:                 "The message body that follows is by default an XML message and can contain a number of separate response codes, depending on how many sub-requests were made.",
	code.AlreadyReported:             "The members of a DAV binding have already been enumerated in a preceding part of the response, and are not being included again.",
	code.IMUsed:                      "The server has fulfilled a request for the resource, and the response is a representation of the result of one or more instance-manipulations applied to the current instance.",

	code.MultipleChoices:   "Indicates multiple options for the resource from which the client may choose.",
	code.MovedPermanently:  "This and all future requests should be directed to the given URI.",
	code.Found:             "Tells the client to look at (browse to) another URL.",
	code.SeeOther:          "The response to the request can be found under another URI using the GET method.",
	code.NotModified:       "Indicates that the resource has not been modified since the version specified by the request headers If-Modified-Since or If-None-Match.",
	code.UseProxy:          "The requested resource is available only through a proxy, the address for which is provided in the response.",
	code.TemporaryRedirect: "The request should be repeated with another URI; however, future requests should still use the original URI.",
	code.PermanentRedirect: "This and all future requests should be directed to the given URI, and the request method must not be changed.",

	code.BadRequest:                  "The server cannot or will not process the request due to an apparent client error.",
	code.Unauthorized:                "Authentication is required and has failed or has not yet been provided.",
	code.PaymentRequired:             "Reserved for future use; some services use it to indicate that payment is required before the request can be processed.",
	code.Forbidden:                   "The request contained valid data and was understood by the server, but the server is refusing action.",
	code.NotFound:                    "The requested resource could not be found but may be available again in the future.",
	code.MethodNotAllowed:            "A request method is not supported for the requested resource.",
	code.NotAcceptable:               "The requested resource is capable of generating only content not acceptable according to the Accept headers sent in the request.",
	code.ProxyAuthenticationRequired: "The client must first authenticate itself with the proxy.",
	code.RequestTimeout:              "The server timed out waiting for the request.",
	code.Conflict:                    "Indicates that the request could not be processed because of conflict in the current state of the resource.",
	code.Gone:                        "Indicates that the resource requested is no longer available and will not be available again.",
	code.LengthRequired:              "The request did not specify the length of its content, which is required by the requested resource.",
	code.PreconditionFailed:          "The server does not meet one of the preconditions that the requester put on the request header fields.",
	code.ContentTooLarge:             "The request is larger than the server is willing or able to process.",
	code.URITooLong:                  "The URI provided was too long for the server to process.",
	code.UnsupportedMediaType:        "The request entity has a media type which the server or resource does not support.",
	code.RangeNotSatisfiable:         "The client has asked for a portion of the file, but the server cannot supply that portion.",
	code.ExpectationFailed:           "The server cannot meet the requirements of the Expect request-header field.",
	code.MisdirectedRequest:          "The request was directed at a server that is not able to produce a response.",
	code.UnprocessableContent:        "The request was well-formed but was unable to be followed due to semantic errors.",
	code.Locked:                      "The resource that is being accessed is locked.",
	code.FailedDependency:            "The request failed because it depended on another request and that request failed.",
	code.TooEarly:                    "Indicates that the server is unwilling to risk processing a request that might be replayed.",
	code.UpgradeRequired:             "The client should switch to a different protocol given in the Upgrade header field.",
	code.PreconditionRequired:        "The origin server requires the request to be conditional.",
	code.TooManyRequests:             "The user has sent too many requests in a given amount of time.",
	code.RequestHeaderFieldsTooLarge: "The server is unwilling to process the request because either an individual header field, or all the header fields collectively, are too large.",
	code.UnavailableForLegalReasons:  "A server operator has received a legal demand to deny access to a resource or to a set of resources that includes the requested resource.",

	code.InternalServerError:           "A generic error message, given when an unexpected condition was encountered and no more specific message is suitable.",
	code.NotImplemented:                "The server either does not recognize the request method, or it lacks the ability to fulfil the request.",
	code.BadGateway:                    "The server was acting as a gateway or proxy and received an invalid response from the upstream server.",
	code.ServiceUnavailable:            "The server cannot handle the request (because it is overloaded or down for maintenance).",
	code.GatewayTimeout:                "The server was acting as a gateway or proxy and did not receive a timely response from the upstream server.",
	code.HTTPVersionNotSupported:       "The server does not support the HTTP version used in the request.",
	code.VariantAlsoNegotiates:         "Transparent content negotiation for the request results in a circular reference.",
	code.InsufficientStorage:           "The server is unable to store the representation needed to complete the request.",
	code.LoopDetected:                  "The server detected an infinite loop while processing the request.",
	code.NotExtended:                   "Further extensions to the request are required for the server to fulfil it.",
	code.NetworkAuthenticationRequired: "The client needs to authenticate to gain network access.",
}
