// apps/go-solver/internal/game/daily.go
//
// Daily boards: every board length has its own word of the day.
// The index is HMAC-SHA256(salt, "YYYY-MM-DD/<length>") reduced modulo the
// number of answers of that length, so it is stable for a UTC day and
// changes when the salt does.

package game

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyKey is the message hashed for the daily board of the given length.
func DailyKey(date time.Time, length int) string {
	return DateKey(date) + "/" + strconv.Itoa(length)
}

// DailyIndex picks the daily answer among n words of the given length.
// Returns 0 when n is not positive.
func DailyIndex(date time.Time, length int, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DailyKey(date, length)))
	v := binary.BigEndian.Uint64(mac.Sum(nil)[:8])
	return int(v % uint64(n))
}
