// Package daily picks the secret number for the daily challenge. Everyone
// playing on the same UTC date with the same salt gets the same number.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Answer returns a deterministic number in [low, high] for date using
// HMAC(salt, YYYY-MM-DD).
func Answer(date time.Time, salt string, low, high int) int {
	if high <= low {
		return low
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return low + int(n%uint64(high-low+1))
}
