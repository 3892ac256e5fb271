// Package middleware provides HTTP middleware for request handling.
package middleware

import (
	"net/http"
)

// CORS header values. Browsers may call the relay from any origin.
const (
	AllowCredentials = "true"
	AllowOrigin      = "*"
	AllowMethods     = "GET, POST, OPTIONS"
	AllowHeaders     = "Content-Type"
)

// SetCORSHeaders writes the fixed CORS headers onto h.
func SetCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Credentials", AllowCredentials)
	h.Set("Access-Control-Allow-Origin", AllowOrigin)
	h.Set("Access-Control-Allow-Methods", AllowMethods)
	h.Set("Access-Control-Allow-Headers", AllowHeaders)
}

// CORS adds Cross-Origin Resource Sharing headers to every response and
// answers preflight requests with an empty 200.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		SetCORSHeaders(w.Header())

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
