// Package responsewriter wraps http.ResponseWriter so middleware can observe
// the status code and body size after the handler has run. The logging,
// metrics and tracing layers all share this wrapper.
package responsewriter

import (
	"net/http"
)

// ResponseWriter records the status code and byte count of a response as it
// is written.
type ResponseWriter struct {
	http.ResponseWriter
	statusCode    int
	bytesWritten  int
	headerWritten bool
}

// Wrap returns a recording wrapper around w. The status defaults to 200,
// matching net/http's implicit WriteHeader.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records statusCode and forwards it. Duplicate calls are
// dropped; only the first status reaches the client anyway.
func (w *ResponseWriter) WriteHeader(statusCode int) {
	if !w.headerWritten {
		w.statusCode = statusCode
		w.headerWritten = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

// Write forwards the body and accumulates its size.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		// 明示的な WriteHeader なしの書き込みは 200 扱い
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

// StatusCode returns the recorded HTTP status code.
func (w *ResponseWriter) StatusCode() int {
	return w.statusCode
}

// BytesWritten returns the number of body bytes written so far.
func (w *ResponseWriter) BytesWritten() int {
	return w.bytesWritten
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
