package retry

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

// Strategy determines whether an action should be retried. Strategies may
// delay or cause other side effects.
type Strategy func(attempts uint, err error) bool

// Limit returns a strategy that caps the total number of attempts.
// maxAttempts should be >= 1, since the action is evaluated first.
func Limit(maxAttempts uint) Strategy {
	return func(attempts uint, err error) bool {
		return attempts < maxAttempts
	}
}

// RetriableErrors returns a strategy that only permits the listed errors to
// be retried.
func RetriableErrors(retriable ...error) Strategy {
	return func(attempts uint, err error) bool {
		for _, e := range retriable {
			if errors.Is(err, e) {
				return true
			}
		}

		return false
	}
}

// NonRetriableErrors returns a strategy that stops retrying when the error is
// one of the listed errors.
func NonRetriableErrors(nonRetriable ...error) Strategy {
	return func(attempts uint, err error) bool {
		for _, e := range nonRetriable {
			if errors.Is(err, e) {
				return false
			}
		}

		return true
	}
}

// Backoff returns a strategy that sleeps before the next attempt, with the
// delay produced by the provided Delay function, capped at maxDelay.
func Backoff(delay Delay, maxDelay time.Duration) Strategy {
	return func(attempts uint, err error) bool {
		d := delay(attempts)
		sleepFunc(time.Duration(math.Min(float64(maxDelay), float64(d))))
		return true
	}
}

// BackoffWithJitter behaves like Backoff, but spreads the capped delay by the
// jitter fraction. A capped delay of 100ms with a jitter of 0.1 results in a
// sleep of 100ms +/- 10ms.
func BackoffWithJitter(delay Delay, maxDelay time.Duration, jitter float64) Strategy {
	return func(attempts uint, err error) bool {
		d := delay(attempts)
		capped := time.Duration(math.Min(float64(maxDelay), float64(d)))
		sleepFunc(time.Duration(float64(capped) * (1 + (rand.Float64()*jitter*2 - jitter))))
		return true
	}
}

// sleepFunc is swapped out in tests to avoid real delays.
var sleepFunc = time.Sleep
