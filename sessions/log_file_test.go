package sessions

import (
	"testing"
	"time"
)

func TestLogFileName(t *testing.T) {
	name := LogFileName(
		time.Date(2024, 3, 5, 7, 8, 9, 0, time.UTC),
		"abc",
	)
	if name != "fash_20240305_070809_abc.log" {
		t.Fatalf("got %s", name)
	}
}
