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

// Package httpx writes *httpstatus.Error values as HTTP responses and adapts
// error-returning handlers to http.Handler.
//
// The response body is a JSON object encoded with protojson from a
// google.protobuf.Struct:
//
//	{
//	  "code": 404,
//	  "kind": "NOT_FOUND",
//	  "message": "404 Not Found",
//	  "correlation_id": "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
//	  "grpc_code": "NOTFOUND",
//	  "details": {"resource": "user"}
//	}
//
// "grpc_code" is present only when the Writer has a Mapper; "details" only
// when the error carries some.
package httpx
