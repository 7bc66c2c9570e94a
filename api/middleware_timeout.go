package api

import (
	"net/http"
	"time"
)

const timeoutBody = `{"Response":{"Message":"Request timeout","Error":"the request took too long to process"}}`

// TimeoutMiddleware cancels the request context after timeout and answers 503 with a
// JSON body if the handler has not written anything yet
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		th := http.TimeoutHandler(next, timeout, timeoutBody)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// handler headers replace this one when the handler finishes in time
			w.Header().Set("Content-Type", "application/json")
			th.ServeHTTP(w, r)
		})
	}
}
