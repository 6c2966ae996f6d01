package httpclient

import (
	"encoding/json"
	"fmt"
)

// Request is one outbound call. Path is joined to Config.BaseURL unless it
// is already absolute.
type Request struct {
	Method string
	Path   string
	// Headers win over Config.Headers on conflict.
	Headers map[string]string
	// Body may be a *MultipartBody, an io.Reader (sent as a raw octet
	// stream), []byte, a string, or any value to encode as JSON.
	Body any
	// ContentLength is sent when positive, for streamed bodies of known size
	// such as an audio file.
	ContentLength int64
	// Auth replaces the client auth for this call.
	Auth *AuthConfig
}

// Response holds a fully read reply.
type Response struct {
	StatusCode int
	Body       []byte
}

// DecodeJSON unmarshals the body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("httpclient: decode %d response: %w", r.StatusCode, err)
	}
	return nil
}
