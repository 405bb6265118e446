package planning

import "errors"

var (
	// ErrPolicyNotFound means a pair entered the run without an explicit
	// planning policy. Fatal to that pair only.
	ErrPolicyNotFound = errors.New("planning policy not found")

	// ErrMissingStartingSnapshot means no inventory snapshot exists at or
	// before the run week, so the pair has no valid initial state.
	ErrMissingStartingSnapshot = errors.New("no starting inventory snapshot")

	// ErrInsufficientHistory means too few historical weeks exist to
	// estimate demand variance. Recovered by the configured minimum safety
	// stock and flagged on the policy snapshot.
	ErrInsufficientHistory = errors.New("insufficient demand history")

	// ErrInvalidPolicy means a policy failed validation (negative lead
	// time, out-of-range service level, forecast window below one week).
	ErrInvalidPolicy = errors.New("invalid planning policy")

	ErrRunNotFound        = errors.New("plan run not found")
	ErrProjectionNotFound = errors.New("projection not found")
)
