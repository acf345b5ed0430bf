// Package observability provides request logging middleware for the web
// handlers.
package observability

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/noticedesk/noticedesk.uk/internal/web/platform/httpx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// statusRecorder captures the response status and size for logging.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func (w *statusRecorder) WriteHeader(status int) {
	if w.statusCode == 0 {
		w.statusCode = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Write(body []byte) (int, error) {
	if w.statusCode == 0 {
		w.statusCode = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(body)
	w.bytes += n
	return n, err
}

// RequestLogger logs one line per request with method, path, status, size,
// latency, request id, and the propagated trace id when an upstream proxy
// sends one.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			r = r.WithContext(ctx)
			recorder := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(recorder, r)

			status := recorder.statusCode
			if status == 0 {
				status = http.StatusOK
			}
			requestID := "-"
			if rid := strings.TrimSpace(r.Header.Get("X-Request-ID")); rid != "" {
				requestID = rid
			}
			traceID := "-"
			if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
				traceID = sc.TraceID().String()
			}
			logger.Printf(
				"method=%s path=%s status=%d bytes=%d latency=%s request_id=%s trace_id=%s",
				r.Method,
				r.URL.Path,
				status,
				recorder.bytes,
				time.Since(start).Round(time.Microsecond),
				requestID,
				traceID,
			)
		})
	}
}
