package calculation

import (
	"math/rand"
	"time"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider used for default start dates (tests only).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// seedFunc supplies a seed when the caller did not pass one.
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the fallback seed provider (tests only).
func SetSeedFunc(f func() int64) { seedFunc = f }

// newRand builds a generator private to one computation. A nil seed draws
// from the process-wide provider so unseeded runs differ per invocation.
func newRand(seed *int64) (*rand.Rand, int64) {
	s := seedFunc()
	if seed != nil {
		s = *seed
	}
	return rand.New(rand.NewSource(s)), s
}

// today returns the current date at midnight UTC.
func today() time.Time {
	n := nowFunc()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}
