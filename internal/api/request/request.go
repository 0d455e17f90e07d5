package request

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Request bodies larger than this are rejected outright.
const maxBodySize = 64 << 10

// GetQueryString returns a string query parameter or the default value
func GetQueryString(r *http.Request, key string, defaultVal string) string {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// DecodeJSON decodes a JSON request body into dst with a size cap
func DecodeJSON(r *http.Request, dst interface{}) error {
	body := io.LimitReader(r.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
