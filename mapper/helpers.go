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

// freezeGRPC makes an immutable copy of a per-status gRPC map.
// Used when finalizing the mapper so later mutations to the builder
// cannot affect the mapper.
func freezeGRPC(src map[code.Code]codes.Code) map[code.Code]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeHTTP makes an immutable copy of the reverse table.
func freezeHTTP(src map[codes.Code]code.Code) map[codes.Code]code.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[codes.Code]code.Code, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
