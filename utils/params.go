package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"tripnest/globals"
)

// FormOrJSON extracts the named fields from a request body that may be
// either a JSON object (React-style clients) or form data (plain HTML
// forms and scripts). Missing keys come back as empty strings.
func FormOrJSON(r *http.Request, keys ...string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = ""
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			for _, k := range keys {
				if v, ok := body[k]; ok && v != nil {
					out[k] = fmt.Sprint(v)
				}
			}
		}
		return out
	}

	if err := r.ParseForm(); err != nil {
		return out
	}
	for _, k := range keys {
		out[k] = r.FormValue(k)
	}
	return out
}

// GetUserEmail returns the authenticated email set by the auth gate, or
// "" if the request never passed through it.
func GetUserEmail(r *http.Request) string {
	email, ok := r.Context().Value(globals.UserEmailKey).(string)
	if !ok {
		return ""
	}
	return email
}
