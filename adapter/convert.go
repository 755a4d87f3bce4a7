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

package adapter

import (
	"dirpx.dev/httpstatus"
	"dirpx.dev/httpstatus/apis"
	"dirpx.dev/httpstatus/reason"
)

// ToDescriptor converts a status error together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries the kind, family and phrase of the error as well as
// the concrete transport statuses (HTTP and gRPC).
func ToDescriptor(e *httpstatus.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	k := e.Kind()
	// every kind is a registered code, so the phrase lookup cannot fail
	phrase, _ := reason.Phrase(int(k.Code()))
	return apis.ErrorDescriptor{
		Kind:       k.Name(),
		Family:     k.Family().String(),
		Phrase:     phrase,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message,
	}
}

// ToView converts a status error into a public ErrorView. This function
// performs no automatic redaction or filtering; it exposes exactly what the
// error instance contains.
//
// If the error carries structured details, they are copied into the view
// as-is. It is up to the caller or API layer to decide whether to redact or
// filter sensitive fields.
func ToView(e *httpstatus.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Code:    e.StatusCode(),
		Kind:    e.Kind().Name(),
		Message: e.Message,
	}
	if ds := e.ErrorDetails(); len(ds) > 0 {
		v.Details = ds
	}
	return v
}
