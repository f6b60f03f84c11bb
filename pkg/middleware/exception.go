package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// FaultPropertyName labels every entry of the fault envelope.
// Existing clients match on this literal.
const FaultPropertyName = "application/json"

// Failure is a single entry of the fault envelope.
type Failure struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
}

// Validation lists the failures of a faulted request.
type Validation struct {
	Errors []Failure `json:"errors"`
}

// FaultReport is the JSON body written for an unhandled fault.
type FaultReport struct {
	Validation Validation `json:"validation"`
}

// NewFaultReport builds the envelope for err: the cause's message first when
// err wraps one, then err's own message.
func NewFaultReport(err error) FaultReport {
	failures := make([]Failure, 0, 2)
	if cause := errors.Unwrap(err); cause != nil {
		failures = append(failures, Failure{PropertyName: FaultPropertyName, ErrorMessage: cause.Error()})
	}
	failures = append(failures, Failure{PropertyName: FaultPropertyName, ErrorMessage: err.Error()})

	return FaultReport{Validation: Validation{Errors: failures}}
}

// Exception returns middleware that recovers panics raised downstream, logs
// them, and answers with a 500 FaultReport. It must wrap every other
// middleware so nothing writes to the response after it.
func Exception(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := wrapResponseWriter(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err := asError(rec)
				attrs := []any{
					"error", err.Error(),
					"method", r.Method,
					"path", r.URL.Path,
				}
				if cause := errors.Unwrap(err); cause != nil {
					attrs = append(attrs, "cause", cause.Error())
				}
				if id := rw.Header().Get(RequestIDHeader); id != "" {
					attrs = append(attrs, "request_id", id)
				}
				logger.Error("unhandled request fault", attrs...)

				if rw.wroteHeader {
					logger.Warn("fault after response started, envelope not written", "path", r.URL.Path)
					return
				}

				rw.Header().Set("Content-Type", "application/json")
				rw.WriteHeader(http.StatusInternalServerError)
				if err := json.NewEncoder(rw).Encode(NewFaultReport(err)); err != nil {
					logger.Error("encode fault report", "error", err)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

func asError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("%v", rec)
}
