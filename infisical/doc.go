// Package infisical implements a runtime secret provider backed by the
// Infisical HTTP API.
//
// The provider authenticates with machine-identity universal auth
// (client ID + client secret), caches the resulting access token until
// shortly before it expires, and caches the fetched secret set with an
// independent TTL (default 5 minutes). Expired state is refreshed lazily
// on the next lookup.
//
//	p, err := infisical.New(infisical.Config{
//	    SiteURL:      "https://app.infisical.com",
//	    ClientID:     os.Getenv("INFISICAL_CLIENT_ID"),
//	    ClientSecret: os.Getenv("INFISICAL_CLIENT_SECRET"),
//	    ProjectID:    "my-project",
//	    Environment:  "prod",
//	})
//	reg.Register(p)
package infisical
