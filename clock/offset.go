package clock

import (
	"fmt"
	"time"
)

// OffsetBetween returns the signed wall-clock difference (b minus a) between
// two clocks at the given instant. Since both clocks observe the same
// instant, the difference reduces to the gap between their UTC offsets.
// Positive means b's local time is ahead of a's.
func OffsetBetween(a, b *Clock, at time.Time) time.Duration {
	return time.Duration(b.UTCOffsetAt(at)-a.UTCOffsetAt(at)) * time.Second
}

// SplitOffset decomposes a duration into whole hours and remaining minutes.
// Sub-second precision and leftover seconds are discarded, not rounded.
// Hours keep their sign; minutes are always returned as an absolute value.
func SplitOffset(d time.Duration) (hours, minutes int) {
	total := int(d / time.Second)
	hours = total / 3600
	minutes = (total % 3600) / 60
	if minutes < 0 {
		minutes = -minutes
	}
	return hours, minutes
}

// FormatOffset renders a signed duration as "+H hours M minutes".
// A "+" prefix is added only when the hour component is positive; negative
// hours carry their own sign, and a zero hour component renders unsigned
// even when the underlying duration is negative.
func FormatOffset(d time.Duration) string {
	hours, minutes := SplitOffset(d)

	sign := ""
	if hours > 0 {
		sign = "+"
	}

	return fmt.Sprintf("%s%d hours %d minutes", sign, hours, minutes)
}
