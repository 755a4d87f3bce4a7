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
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dirpx.dev/httpstatus"
	"dirpx.dev/httpstatus/mapper"
	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var s structpb.Struct
	if err := protojson.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("body is not a JSON object: %v\n%s", err, rec.Body.String())
	}
	return s.AsMap()
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestWrite_StatusError(t *testing.T) {
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	var logs bytes.Buffer
	w := Writer{Mapper: m, Logger: newLogger(&logs)}

	rec := httptest.NewRecorder()
	e := httpstatus.ErrNotFound.WithDetail("resource", "user").WithDetail("id", 7)
	w.Write(rec, e, Meta{CorrelationID: "req-1"})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if id := rec.Header().Get(HeaderCorrelationID); id != "req-1" {
		t.Fatalf("correlation header = %q, want req-1", id)
	}
	if ra := rec.Header().Get("Retry-After"); ra != "" {
		t.Fatalf("Retry-After must be absent, got %q", ra)
	}

	body := decode(t, rec)
	want := map[string]any{
		"code":           float64(404),
		"kind":           "NOT_FOUND",
		"message":        "404 Not Found",
		"correlation_id": "req-1",
		"grpc_code":      "NOTFOUND",
		"details":        map[string]any{"resource": "user", "id": float64(7)},
	}
	if fmt.Sprint(body) != fmt.Sprint(want) {
		t.Fatalf("body = %v\nwant %v", body, want)
	}

	out := logs.String()
	for _, s := range []string{"level=DEBUG", "status=404", "kind=NOT_FOUND", "correlation_id=req-1"} {
		if !strings.Contains(out, s) {
			t.Fatalf("log must contain %q:\n%s", s, out)
		}
	}
}

func TestWrite_RetryAfter_And_ServerLevel(t *testing.T) {
	var logs bytes.Buffer
	w := Writer{Logger: newLogger(&logs)}

	rec := httptest.NewRecorder()
	w.Write(rec, httpstatus.ErrServiceUnavailable.WithMessage("maintenance"), Meta{RetryAfterSeconds: 30})

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if ra := rec.Header().Get("Retry-After"); ra != "30" {
		t.Fatalf("Retry-After = %q, want 30", ra)
	}
	body := decode(t, rec)
	if body["retry_after_seconds"] != float64(30) || body["message"] != "maintenance" {
		t.Fatalf("body = %v", body)
	}
	if _, ok := body["grpc_code"]; ok {
		t.Fatalf("grpc_code must be absent without a Mapper")
	}
	if !strings.Contains(logs.String(), "level=ERROR") {
		t.Fatalf("5xx must be logged at error level:\n%s", logs.String())
	}
}

func TestWrite_GeneratesCorrelationID(t *testing.T) {
	w := Writer{Logger: newLogger(&bytes.Buffer{})}
	rec := httptest.NewRecorder()
	w.Write(rec, httpstatus.ErrBadRequest, Meta{})

	id := rec.Header().Get(HeaderCorrelationID)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("generated correlation id %q is not a UUID: %v", id, err)
	}
	if decode(t, rec)["correlation_id"] != id {
		t.Fatalf("body and header correlation ids must agree")
	}
}

func TestWrite_ForeignErrorBecomes500(t *testing.T) {
	var logs bytes.Buffer
	w := Writer{Logger: newLogger(&logs)}
	rec := httptest.NewRecorder()
	w.Write(rec, errors.New("pq: password authentication failed"), Meta{})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := decode(t, rec)
	if body["message"] != "500 Internal Server Error" || body["kind"] != "INTERNAL_SERVER_ERROR" {
		t.Fatalf("body = %v", body)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("foreign error text must not reach the client:\n%s", rec.Body.String())
	}
	if !strings.Contains(logs.String(), "password authentication failed") {
		t.Fatalf("the cause must be logged:\n%s", logs.String())
	}
}

func TestWrite_WrappedAndNil(t *testing.T) {
	w := Writer{Logger: newLogger(&bytes.Buffer{})}

	rec := httptest.NewRecorder()
	w.Write(rec, fmt.Errorf("load: %w", httpstatus.ErrConflict), Meta{})
	if rec.Code != http.StatusConflict {
		t.Fatalf("wrapped *Error must keep its status, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	w.Write(rec, nil, Meta{})
	if rec.Body.Len() != 0 || rec.Header().Get("Content-Type") != "" {
		t.Fatalf("nil error must write nothing")
	}
}

func TestWrite_UnsupportedDetailValue(t *testing.T) {
	w := Writer{Logger: newLogger(&bytes.Buffer{})}
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := httptest.NewRecorder()
	w.Write(rec, httpstatus.ErrGone.WithDetail("deleted_at", at), Meta{})

	details, _ := decode(t, rec)["details"].(map[string]any)
	if details["deleted_at"] != fmt.Sprint(at) {
		t.Fatalf("unsupported values must be rendered as strings, got %v", details)
	}
}

func TestHandler(t *testing.T) {
	w := Writer{Logger: newLogger(&bytes.Buffer{})}
	h := w.Handler(func(rw http.ResponseWriter, r *http.Request) error {
		if r.URL.Path == "/ok" {
			rw.WriteHeader(http.StatusNoContent)
			return nil
		}
		return httpstatus.ErrForbidden.WithMessage("admins only")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(HeaderCorrelationID, "abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden || rec.Header().Get(HeaderCorrelationID) != "abc" {
		t.Fatalf("got %d %q", rec.Code, rec.Header().Get(HeaderCorrelationID))
	}
	if decode(t, rec)["message"] != "admins only" {
		t.Fatalf("message must be written")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("successful handlers must be left alone, got %d", rec.Code)
	}
}
