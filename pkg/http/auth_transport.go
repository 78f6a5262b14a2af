package http

import "net/http"

// authTransport injects a bearer token into outbound requests. The request
// is cloned first: RoundTrippers must not mutate the original.
type authTransport struct {
	token string
	next  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token == "" {
		return t.next.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+t.token)

	return t.next.RoundTrip(clone)
}

// WithAuthToken adds bearer authentication to the client. An empty token
// leaves requests untouched.
func WithAuthToken(token string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &authTransport{
			token: token,
			next:  rt,
		}
	})
}
