package datefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFullDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "january",
			date: time.Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC),
			want: "2 января 2024 г.",
		},
		{
			name: "march",
			date: time.Date(2023, time.March, 8, 0, 0, 0, 0, time.UTC),
			want: "8 марта 2023 г.",
		},
		{
			name: "may",
			date: time.Date(2025, time.May, 31, 23, 59, 59, 0, time.UTC),
			want: "31 мая 2025 г.",
		},
		{
			name: "december",
			date: time.Date(2022, time.December, 15, 6, 30, 0, 0, time.UTC),
			want: "15 декабря 2022 г.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FullDate(tt.date))
		})
	}
}
