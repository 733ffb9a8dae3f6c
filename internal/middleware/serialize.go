package middleware

import (
	"net/http"
	"sync"
)

// Serialize runs requests one at a time. The catalog store is
// single-owner and does no locking of its own; the HTTP adapter is the
// one place it gets shared across goroutines, so the serialization
// lives here.
func Serialize() func(http.Handler) http.Handler {
	var mu sync.Mutex
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			next.ServeHTTP(w, r)
		})
	}
}
