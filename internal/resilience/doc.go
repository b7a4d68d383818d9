// Package resilience provides fault tolerance patterns for calls to
// external dependencies: the annotation service, the sentiment providers,
// and feed fetching.
//
// It contains circuit breakers (wrapping sony/gobreaker) and retry logic
// with exponential backoff and jitter.
//
//	cb := circuitbreaker.NewCircuitBreaker("annotator", circuitbreaker.DefaultConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callExternalService()
//	})
//
//	err := retry.WithBackoff(ctx, retry.DefaultConfig(), func() error {
//	    return performOperation()
//	})
package resilience
