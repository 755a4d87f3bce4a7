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

// Package code provides the canonical representation and validation of HTTP
// status codes.
//
// A "code" is an integer in the closed range [100, 599]. Not every value in
// that range is assigned by IANA; whether a value is assigned is a question
// for the tables in dirpx.dev/httpstatus/reason, not for this package.
//
// Validation happens in two stages and every lookup in this module follows
// the same order:
//
//  1. range check: values outside [100, 599] are rejected with an
//     *InvalidArgumentError (matches ErrInvalidArgument);
//  2. assignment check: values inside the range that the relevant table does
//     not know are rejected with an *OutOfRangeError (matches ErrOutOfRange).
//
// This package implements stage 1 and owns both error kinds so that callers
// can match on them without importing the tables.
package code
