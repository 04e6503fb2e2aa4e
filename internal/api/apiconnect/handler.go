package apiconnect

import "net/http"

// newServiceHandler routes requests under a service prefix to the handler
// registered for the exact procedure path.
func newServiceHandler(prefix string, procedures map[string]http.Handler) (string, http.Handler) {
	return prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := procedures[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}
