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
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"dirpx.dev/httpstatus"
	"dirpx.dev/httpstatus/apis"
	"dirpx.dev/httpstatus/code"
	"dirpx.dev/httpstatus/mapper"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/users.v1.Users/Get"}

func newMapper(t *testing.T, opts ...mapper.Option) apis.Mapper {
	t.Helper()
	m, err := mapper.New(opts...)
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return m
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func failing(err error) grpc.UnaryHandler {
	return func(context.Context, any) (any, error) { return nil, err }
}

func TestInterceptor_MapsStatusError(t *testing.T) {
	var buf bytes.Buffer
	m := newMapper(t)
	icpt := UnaryServerInterceptor(m, WithLoggerOption(newLogger(&buf)))

	_, err := icpt(context.Background(), nil, testInfo,
		failing(fmt.Errorf("get user: %w", httpstatus.ErrNotFound.WithMessage("user 7"))))

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("interceptor must return a status error, got %T", err)
	}
	if st.Code() != codes.NotFound || st.Message() != "user 7" {
		t.Fatalf("status = %v %q, want NotFound %q", st.Code(), st.Message(), "user 7")
	}

	var info *errdetails.ErrorInfo
	for _, d := range st.Details() {
		if v, ok := d.(*errdetails.ErrorInfo); ok {
			info = v
		}
	}
	if info == nil {
		t.Fatalf("ErrorInfo detail missing: %v", st.Details())
	}
	if info.GetReason() != "NOT_FOUND" || info.GetDomain() != Domain {
		t.Fatalf("ErrorInfo = %v", info)
	}
	if info.GetMetadata()[MetaHTTPStatus] != "404" || info.GetMetadata()[MetaFamily] != "client_error" {
		t.Fatalf("ErrorInfo metadata = %v", info.GetMetadata())
	}

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "status=404", "kind=NOT_FOUND", "method=/users.v1.Users/Get"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log must contain %q:\n%s", want, out)
		}
	}
}

func TestInterceptor_ServerErrorLoggedAtError(t *testing.T) {
	var buf bytes.Buffer
	icpt := UnaryServerInterceptor(newMapper(t), WithLoggerOption(newLogger(&buf)))

	_, err := icpt(context.Background(), nil, testInfo, failing(httpstatus.ErrServiceUnavailable))
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("code = %v, want Unavailable", status.Code(err))
	}
	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Fatalf("5xx must be logged at error level:\n%s", buf.String())
	}
}

func TestInterceptor_PassThrough(t *testing.T) {
	var buf bytes.Buffer
	icpt := UnaryServerInterceptor(newMapper(t), WithLoggerOption(newLogger(&buf)))

	resp, err := icpt(context.Background(), "req", testInfo,
		func(_ context.Context, req any) (any, error) { return req, nil })
	if err != nil || resp != "req" {
		t.Fatalf("success must pass through, got %v %v", resp, err)
	}

	foreign := errors.New("boom")
	if _, err := icpt(context.Background(), nil, testInfo, failing(foreign)); err != foreign {
		t.Fatalf("foreign errors must be returned untouched, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing must be logged for pass-through calls:\n%s", buf.String())
	}
}

func TestInterceptor_Extras(t *testing.T) {
	icpt := UnaryServerInterceptor(newMapper(t),
		WithLoggerOption(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
		WithMetaFnOption(func(context.Context, *httpstatus.Error) Extras {
			return Extras{
				CorrelationID: "req-1",
				Retry:         &errdetails.RetryInfo{RetryDelay: durationpb.New(2 * time.Second)},
				Help:          &errdetails.Help{Links: []*errdetails.Help_Link{{Description: "docs", Url: "https://dirpx.dev/docs"}}},
			}
		}),
	)
	_, err := icpt(context.Background(), nil, testInfo, failing(httpstatus.ErrTooManyRequests))
	st := status.Convert(err)
	if st.Code() != codes.ResourceExhausted {
		t.Fatalf("code = %v, want ResourceExhausted", st.Code())
	}

	var gotRetry, gotHelp, gotReq bool
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.RetryInfo:
			gotRetry = v.GetRetryDelay().AsDuration() == 2*time.Second
		case *errdetails.Help:
			gotHelp = len(v.GetLinks()) == 1
		case *errdetails.RequestInfo:
			gotReq = v.GetRequestId() == "req-1"
		}
	}
	if !gotRetry || !gotHelp || !gotReq {
		t.Fatalf("extras missing: retry=%v help=%v request=%v", gotRetry, gotHelp, gotReq)
	}

	e, ok := FromError(nil, err)
	if !ok || e.ErrorDetails()["correlation_id"] != "req-1" {
		t.Fatalf("correlation id must survive the round trip, got %v %v", e, ok)
	}
}

func TestInterceptor_NeverOK(t *testing.T) {
	m := newMapper(t, mapper.WithGRPCOverride(code.NotFound, codes.OK))
	icpt := UnaryServerInterceptor(m, WithLoggerOption(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))

	_, err := icpt(context.Background(), nil, testInfo, failing(httpstatus.ErrNotFound))
	if err == nil || status.Code(err) != codes.Unknown {
		t.Fatalf("an OK mapping must become Unknown, got %v", err)
	}
}

func TestFromError_RoundTrip(t *testing.T) {
	m := newMapper(t, mapper.WithGRPCPattern("4", codes.FailedPrecondition))

	for _, k := range httpstatus.Kinds() {
		in, err := httpstatus.ReasonError(int(k.Code()), httpstatus.WithMessageOption("boom"))
		if err != nil {
			t.Fatalf("ReasonError(%d): %v", k.Code(), err)
		}
		out, ok := FromError(m, Status(m, in).Err())
		if !ok {
			t.Fatalf("FromError(%s) failed", k)
		}
		if out.Kind() != k || out.Message != "boom" {
			t.Fatalf("round trip of %s gave %s %q", k, out.Kind(), out.Message)
		}
		if !errors.Is(out, in) {
			t.Fatalf("errors.Is must match the same kind after a round trip")
		}
	}
}

func TestFromError_ReverseMapping(t *testing.T) {
	m := newMapper(t)
	tests := []struct {
		err  error
		want *httpstatus.Error
	}{
		{status.Error(codes.Unavailable, "down"), httpstatus.ErrServiceUnavailable},
		{status.Error(codes.NotFound, "nope"), httpstatus.ErrNotFound},
		{status.Error(codes.Canceled, "bye"), httpstatus.ErrRequestTimeout},
		{status.Error(codes.Unauthenticated, "who"), httpstatus.ErrUnauthorized},
	}
	for _, tt := range tests {
		got, ok := FromError(m, tt.err)
		if !ok || !errors.Is(got, tt.want) {
			t.Fatalf("FromError(%v) = %v, %v; want kind %s", tt.err, got, ok, tt.want.Kind())
		}
		if got.Message != status.Convert(tt.err).Message() {
			t.Fatalf("message must come from the status, got %q", got.Message)
		}
	}
}

func TestFromError_ForeignDomainIgnored(t *testing.T) {
	st, err := status.New(codes.InvalidArgument, "bad").WithDetails(&errdetails.ErrorInfo{
		Reason:   "GONE",
		Domain:   "example.com",
		Metadata: map[string]string{MetaHTTPStatus: "410"},
	})
	if err != nil {
		t.Fatalf("WithDetails: %v", err)
	}
	got, ok := FromError(newMapper(t), st.Err())
	if !ok || !errors.Is(got, httpstatus.ErrBadRequest) {
		t.Fatalf("foreign ErrorInfo must be ignored, got %v %v", got, ok)
	}
}

func TestFromError_Rejects(t *testing.T) {
	m := newMapper(t, mapper.WithHTTPDefault(codes.Internal, code.OK))

	if _, ok := FromError(m, nil); ok {
		t.Fatalf("nil must not convert")
	}
	if _, ok := FromError(m, status.Error(codes.OK, "")); ok {
		t.Fatalf("OK must not convert")
	}
	if _, ok := FromError(m, status.Error(codes.Internal, "x")); ok {
		t.Fatalf("a status mapped to 200 must not convert")
	}
	if _, ok := FromError(nil, status.Error(codes.Internal, "x")); ok {
		t.Fatalf("no mapper and no ErrorInfo must not convert")
	}
	if e, ok := FromError(m, fmt.Errorf("wrap: %w", httpstatus.ErrGone)); !ok || e != httpstatus.ErrGone {
		t.Fatalf("a wrapped *Error must be returned as-is")
	}
}

func TestStatus_Nil(t *testing.T) {
	if Status(newMapper(t), nil) != nil {
		t.Fatalf("nil error must give a nil status")
	}
}
