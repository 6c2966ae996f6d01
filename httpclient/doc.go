// Package httpclient provides the HTTP client used by the remote backends.
//
// The Client resolves paths against a base URL, applies default headers and
// authentication, and classifies non-2xx responses into *Error values that
// keep the raw response body for diagnostics.
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.assemblyai.com/v2",
//	    Auth:    httpclient.APIKeyAuthHeader(key, "authorization"),
//	})
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/transcript/" + id,
//	})
//
// Bodies may be JSON values, raw bytes, an io.Reader streamed as-is, or a
// *MultipartBody streamed through a pipe.
package httpclient
