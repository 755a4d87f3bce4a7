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

// Package reason is the status table: it maps assigned HTTP status codes to
// their IANA reason phrase and to a longer, human-oriented reason message.
//
// Where the phrase answers "what is this status called?" ("Not Found"), the
// message answers "what does it mean?" ("The requested resource could not
// be found but may be available again in the future.").
//
// Both tables are initialised once, never written afterwards, and have the
// same key set. Lookups validate the input first (see
// dirpx.dev/httpstatus/code) and report unassigned codes with
// *code.OutOfRangeError.
package reason
