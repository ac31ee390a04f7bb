package retry

import (
	"math"
	"time"
)

// Delay produces the amount of time to wait before the next attempt.
// Note: attempts starts at 1.
type Delay func(attempts uint) time.Duration

// Constant returns a Delay that always yields the provided interval.
func Constant(interval time.Duration) Delay {
	return func(attempts uint) time.Duration {
		return interval
	}
}

// Linear returns a Delay that grows linearly with the attempt count.
//
// Ex. Linear(2*time.Second) = 2s, 4s, 6s, 8s, ...
func Linear(base time.Duration) Delay {
	return func(attempts uint) time.Duration {
		if d := base * time.Duration(attempts); d >= 0 {
			return d
		}

		return math.MaxInt64
	}
}

// Exponential returns a Delay that grows exponentially with the attempt count.
//
// delay = base * factor^(attempts - 1)
func Exponential(base time.Duration, factor float64) Delay {
	return func(attempts uint) time.Duration {
		if d := base * time.Duration(math.Pow(factor, float64(attempts-1))); d >= 0 {
			return d
		}

		return math.MaxInt64
	}
}

// BinaryExponential returns an Exponential delay with a factor of 2.0.
//
// Ex. BinaryExponential(2*time.Second) = 2s, 4s, 8s, 16s, ...
func BinaryExponential(base time.Duration) Delay {
	return Exponential(base, 2)
}
