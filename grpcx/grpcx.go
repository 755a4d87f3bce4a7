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
	"errors"
	"log/slog"

	"dirpx.dev/httpstatus"
	"dirpx.dev/httpstatus/apis"
	"dirpx.dev/httpstatus/code"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// Domain is the google.rpc.ErrorInfo domain attached to every status built
// by this package. FromError only trusts ErrorInfo entries from this domain.
const Domain = "httpstatus.dirpx.dev"

// ErrorInfo metadata keys.
const (
	MetaHTTPStatus = "http_status"
	MetaFamily     = "family"
)

// Extras holds optional, rich metadata that can be attached to the gRPC
// status next to the ErrorInfo. All fields are optional.
type Extras struct {
	// CorrelationID is a client/server correlation token (request ID, idempotency key).
	// It is sent as google.rpc.RequestInfo.
	CorrelationID string

	// Retry provides client retry/backoff hints.
	Retry *errdetails.RetryInfo

	// Help lists human-facing links to docs/support/more info.
	Help *errdetails.Help
}

// MetaFn extracts Extras from context and the status error.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, e *httpstatus.Error) Extras

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that
// maps *httpstatus.Error into gRPC errors carrying google.rpc.ErrorInfo.
//
// The provided apis.Mapper picks the gRPC code for the error's HTTP status.
// Errors that are not (and do not wrap) an *httpstatus.Error are returned
// untouched. Every mapped error is logged: server errors at Error level,
// client errors at Debug level.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	cfg := newConfig(opts)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var he *httpstatus.Error
		if !errors.As(err, &he) {
			// Not ours, return as-is.
			return nil, err
		}

		ex := cfg.metaFn(ctx, he)
		st := newStatus(m, he, ex)

		method := ""
		if info != nil {
			method = info.FullMethod
		}
		logError(ctx, cfg.logger, he, st.Code(), method, ex.CorrelationID)

		return nil, st.Err()
	}
}

// Status builds the gRPC status for e: the code comes from m, the message is
// e.Message and the details hold a google.rpc.ErrorInfo. A nil e gives nil.
func Status(m apis.Mapper, e *httpstatus.Error) *status.Status {
	if e == nil {
		return nil
	}
	return newStatus(m, e, Extras{})
}

func newStatus(m apis.Mapper, e *httpstatus.Error, ex Extras) *status.Status {
	k := e.Kind()
	g := m.GRPCStatus(k.Code())
	if g == codes.OK {
		// an OK status would erase the error on the wire
		g = codes.Unknown
	}
	base := status.New(g, e.Message)

	details := []protoadapt.MessageV1{&errdetails.ErrorInfo{
		Reason: k.Name(),
		Domain: Domain,
		Metadata: map[string]string{
			MetaHTTPStatus: k.Code().String(),
			MetaFamily:     k.Family().String(),
		},
	}}
	if ex.CorrelationID != "" {
		details = append(details, &errdetails.RequestInfo{RequestId: ex.CorrelationID})
	}
	if ex.Retry != nil {
		details = append(details, ex.Retry)
	}
	if ex.Help != nil {
		details = append(details, ex.Help)
	}

	// Try to attach details. If it fails, return base.
	if with, err := base.WithDetails(details...); err == nil {
		return with
	}
	return base
}

// FromError rebuilds an *httpstatus.Error from a gRPC error.
//
// The HTTP status is taken from an ErrorInfo of Domain when present,
// otherwise m reverses the gRPC code. The gRPC message becomes the error
// message, and a RequestInfo request id is kept as the "correlation_id"
// detail. It reports false for nil errors, OK statuses, non-status errors
// and statuses that map onto a code outside the catalog.
func FromError(m apis.Mapper, err error) (*httpstatus.Error, bool) {
	if err == nil {
		return nil, false
	}
	var he *httpstatus.Error
	if errors.As(err, &he) {
		return he, true
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() == codes.OK {
		return nil, false
	}

	var (
		c    code.Code
		opts []httpstatus.Option
	)
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			if v.GetDomain() != Domain {
				continue
			}
			if parsed, perr := code.Parse(v.GetMetadata()[MetaHTTPStatus]); perr == nil {
				c = parsed
			}
		case *errdetails.RequestInfo:
			if id := v.GetRequestId(); id != "" {
				opts = append(opts, httpstatus.WithDetailOption("correlation_id", id))
			}
		}
	}
	if c == 0 && m != nil {
		c = m.HTTPStatus(st.Code())
	}
	opts = append(opts, httpstatus.WithMessageOption(st.Message()))

	e, rerr := httpstatus.ReasonError(int(c), opts...)
	if rerr != nil {
		return nil, false
	}
	return e, true
}

func logError(ctx context.Context, l *slog.Logger, e *httpstatus.Error, g codes.Code, method, correlationID string) {
	level := slog.LevelDebug
	if e.Class() == code.ClassServerError {
		level = slog.LevelError
	}
	l.LogAttrs(ctx, level, "grpc request failed",
		slog.Int("status", e.StatusCode()),
		slog.String("kind", e.Kind().Name()),
		slog.String("grpc_code", g.String()),
		slog.String("method", method),
		slog.String("correlation_id", correlationID),
	)
}
