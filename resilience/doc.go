// Package resilience provides retry with exponential backoff for
// operations that may fail transiently, such as the HTTP calls issued
// by secret providers.
//
//	cfg := resilience.DefaultRetryConfig()
//	resp, err := resilience.Retry(ctx, cfg, func() (*Response, error) {
//	    return client.Do(ctx, req)
//	})
package resilience
