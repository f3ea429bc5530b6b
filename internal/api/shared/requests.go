package shared

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into v. Handlers translate a failure
// into a 400 response; the decoder error itself never reaches clients.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
