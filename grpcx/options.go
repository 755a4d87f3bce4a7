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

package grpcx

import (
	"context"
	"log/slog"

	"dirpx.dev/httpstatus"
)

// Option configures UnaryServerInterceptor.
type Option func(*config)

type config struct {
	logger *slog.Logger
	metaFn MetaFn
}

func newConfig(opts []Option) *config {
	c := &config{
		metaFn: func(context.Context, *httpstatus.Error) Extras { return Extras{} },
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// WithLoggerOption sets the logger used to report mapped errors.
// A nil logger means slog.Default().
func WithLoggerOption(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetaFnOption sets the function that extracts Extras for each error.
// A nil function is ignored.
func WithMetaFnOption(fn MetaFn) Option {
	return func(c *config) {
		if fn != nil {
			c.metaFn = fn
		}
	}
}
