package responder

import (
	"fmt"
	"time"
)

// FormatKoreanTime renders t the way the ko-KR locale prints a date-time,
// e.g. "2025. 10. 19. 오후 3:04:05". The hour uses a 12-hour clock where
// both midnight and noon read 12.
func FormatKoreanTime(t time.Time) string {
	period := "오전"
	if t.Hour() >= 12 {
		period = "오후"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d. %d. %d. %s %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), period, hour, t.Minute(), t.Second())
}
