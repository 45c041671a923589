package generator

import "errors"

var (
	// ErrCounterUnavailable means the shared counter increment failed or
	// timed out. Retryable: the increment either happened or it didn't.
	ErrCounterUnavailable = errors.New("counter unavailable")

	// ErrKeySpaceExhausted means the counter value can no longer be
	// represented within the configured key length, or the permutation
	// period has been consumed. Terminal for the current configuration.
	ErrKeySpaceExhausted = errors.New("key space exhausted")

	// ErrInvalidConfiguration is returned by constructors for malformed
	// generator parameters. Never returned per call.
	ErrInvalidConfiguration = errors.New("invalid generator configuration")

	// ErrRandomSource means the entropy source failed.
	ErrRandomSource = errors.New("random source failure")
)
