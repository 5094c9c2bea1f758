package handlers

import (
	"net/http"
	"strconv"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}
	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}
	if val := r.URL.Query().Get(name); val != "" {
		return val
	}
	return r.PathValue(name)
}

func intParam(r *http.Request, name string) (int, bool) {
	val, err := strconv.Atoi(getParam(r, name))
	if err != nil {
		return 0, false
	}
	return val, true
}

// intQuery reads an optional integer query parameter, falling back to def
// when absent or unparseable.
func intQuery(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return val
}
