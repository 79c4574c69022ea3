package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCampaignDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "Intervalo de cinco dias conta o dia inicial e o final",
			start:    day(10),
			end:      day(14),
			expected: 5,
		},
		{
			name:     "Dias consecutivos contam como dois",
			start:    day(10),
			end:      day(11),
			expected: 2,
		},
		{
			name:     "Campanha de um dia só",
			start:    day(10),
			end:      day(10),
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CampaignDays(tt.start, tt.end))

			request := &AdRequest{RequestedStartDate: tt.start, RequestedEndDate: tt.end}
			assert.Equal(t, tt.expected, request.DurationDays())
		})
	}
}
