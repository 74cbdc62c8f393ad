package middleware

import (
	"fmt"
	"net/http"

	"github.com/barkada-pos/api/internal/notify"
)

// NotifyPanics records a system-error notification for the developer
// feed when a handler panics, then re-panics so the outer recoverer
// writes the 500. Client aborts pass through untouched.
func NotifyPanics(store *notify.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec != http.ErrAbortHandler {
						store.Push(notify.SystemError(fmt.Sprintf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)))
					}
					panic(rec)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
