// Package httpclient provides a configurable HTTP client used by envkit's
// remote secret providers.
//
// It layers authentication, TLS, and retry on top of net/http, and
// classifies response status codes into typed errors so callers can react
// to authentication failures and transient server errors without parsing
// status codes themselves.
//
// # Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://secrets.example.com",
//	    Timeout: 10 * time.Second,
//	})
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/api/v3/secrets/raw",
//	    Query:  map[string]string{"workspaceId": "proj"},
//	    Auth:   httpclient.BearerAuth(token),
//	})
package httpclient
