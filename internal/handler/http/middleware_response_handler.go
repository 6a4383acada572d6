// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jacob Marr

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] to capture the status
// code and body size for access logging. WriteHeader is forwarded to the
// underlying writer exactly once; later calls are ignored, matching the
// contract of the standard library's writer.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
