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

package httpx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"dirpx.dev/httpstatus"
	"dirpx.dev/httpstatus/apis"
	"dirpx.dev/httpstatus/code"
	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// HeaderCorrelationID is read from requests and always set on error responses.
const HeaderCorrelationID = "X-Correlation-Id"

// Meta carries extra context that the HTTP layer can add on top of an
// *httpstatus.Error. All fields are optional and typically come from request
// headers, rate-limiter output, or router-level logic.
type Meta struct {
	// CorrelationID is echoed in the header and the body. An empty value is
	// replaced with a fresh UUID.
	CorrelationID string

	// RetryAfterSeconds sets the Retry-After header when positive.
	RetryAfterSeconds int32
}

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response. The zero value is usable.
type Writer struct {
	// Mapper, when set, adds the gRPC code of the status to the body.
	Mapper apis.Mapper

	// Logger receives one record per written error; nil means slog.Default().
	Logger *slog.Logger
}

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handler adapts h to http.Handler. When h returns an error it is written
// with Write, reusing the request's correlation id header if any.
func (w Writer) Handler(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.write(r.Context(), rw, err, Meta{CorrelationID: r.Header.Get(HeaderCorrelationID)})
		}
	})
}

// Write serializes err and writes it to the response writer.
//
// An error that is (or wraps) an *httpstatus.Error is written with its own
// status code and message. Any other error becomes a 500 with the default
// message, so internal error text never reaches the client. A nil err writes
// nothing.
//
// No redaction is applied to Details: whatever the error carries is exposed
// as-is. Higher-level handlers should apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	w.write(context.Background(), rw, err, meta)
}

func (w Writer) write(ctx context.Context, rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	var he *httpstatus.Error
	if !errors.As(err, &he) {
		he = httpstatus.ErrInternalServerError.WithCause(err)
	}
	if meta.CorrelationID == "" {
		meta.CorrelationID = uuid.NewString()
	}

	w.log(ctx, he, meta.CorrelationID)

	body, merr := w.body(he, meta)
	if merr != nil {
		// protojson rejects strings that are not valid UTF-8
		body = []byte(fmt.Sprintf(`{"code":%d}`, he.StatusCode()))
	}

	h := rw.Header()
	h.Set("Content-Type", "application/json")
	h.Set(HeaderCorrelationID, meta.CorrelationID)
	if meta.RetryAfterSeconds > 0 {
		h.Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(he.StatusCode())
	_, _ = rw.Write(body)
}

// body builds the JSON payload through structpb so that protojson decides
// field rendering and number formatting.
func (w Writer) body(e *httpstatus.Error, meta Meta) ([]byte, error) {
	fields := map[string]*structpb.Value{
		"code":           structpb.NewNumberValue(float64(e.StatusCode())),
		"kind":           structpb.NewStringValue(e.Kind().Name()),
		"message":        structpb.NewStringValue(e.Message),
		"correlation_id": structpb.NewStringValue(meta.CorrelationID),
	}
	if meta.RetryAfterSeconds > 0 {
		fields["retry_after_seconds"] = structpb.NewNumberValue(float64(meta.RetryAfterSeconds))
	}
	if w.Mapper != nil {
		g := w.Mapper.GRPCStatus(e.Kind().Code())
		fields["grpc_code"] = structpb.NewStringValue(strings.ToUpper(g.String()))
	}
	if ds := e.ErrorDetails(); len(ds) > 0 {
		fields["details"] = structpb.NewStructValue(detailsStruct(ds))
	}

	return protojson.MarshalOptions{UseProtoNames: true}.Marshal(&structpb.Struct{Fields: fields})
}

// detailsStruct converts details to a Struct. Values structpb cannot
// represent (time.Time, custom structs, ...) are rendered with fmt.
func detailsStruct(ds map[string]any) *structpb.Struct {
	out := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(ds))}
	for k, v := range ds {
		pv, err := structpb.NewValue(v)
		if err != nil {
			pv = structpb.NewStringValue(fmt.Sprint(v))
		}
		out.Fields[k] = pv
	}
	return out
}

func (w Writer) log(ctx context.Context, e *httpstatus.Error, correlationID string) {
	l := w.Logger
	if l == nil {
		l = slog.Default()
	}
	level := slog.LevelDebug
	if e.Class() == code.ClassServerError {
		level = slog.LevelError
	}
	attrs := []slog.Attr{
		slog.Int("status", e.StatusCode()),
		slog.String("kind", e.Kind().Name()),
		slog.String("correlation_id", correlationID),
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}
	l.LogAttrs(ctx, level, "http request failed", attrs...)
}
