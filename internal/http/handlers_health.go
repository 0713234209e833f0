package httpx

import "net/http"

// Health answers liveness probes. It carries no dependency checks; a
// process that can serve it is alive.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
