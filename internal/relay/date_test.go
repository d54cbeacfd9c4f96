package relay

import (
	"testing"
	"time"
)

func TestTargetDate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"after six utc", time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC), "2024-01-02"},
		{"before six utc", time.Date(2024, 1, 2, 5, 59, 59, 0, time.UTC), "2024-01-01"},
		{"year boundary", time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC), "2023-12-31"},
		// Summer: still UTC-6, not CDT.
		{"no daylight saving", time.Date(2024, 7, 4, 5, 30, 0, 0, time.UTC), "2024-07-03"},
		{"input in other zone", time.Date(2024, 3, 10, 1, 0, 0, 0, time.FixedZone("UTC+9", 9*60*60)), "2024-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetDate(tt.now); got != tt.want {
				t.Errorf("TargetDate(%v) = %q, want %q", tt.now, got, tt.want)
			}
		})
	}
}
