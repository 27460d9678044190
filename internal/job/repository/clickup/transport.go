package clickup

import "net/http"

// tokenTransport sets the raw API token on every outgoing request.
type tokenTransport struct {
	token string
	base  http.RoundTripper
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", t.token)
	return t.base.RoundTrip(r)
}
