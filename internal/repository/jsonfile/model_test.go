package jsonfile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{name: "RFC3339 UTC", input: "2024-01-15T10:30:00Z", expected: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{name: "RFC3339 with offset", input: "2024-01-15T10:30:00+02:00", expected: time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
		{name: "RFC3339 nanos", input: "2024-01-15T10:30:00.000000001Z", expected: time.Date(2024, 1, 15, 10, 30, 0, 1, time.UTC)},
		{name: "zone-less micros", input: "2024-01-15T10:30:00.250000", expected: time.Date(2024, 1, 15, 10, 30, 0, 250000000, time.Local)},
		{name: "zone-less with space", input: "2024-01-15 10:30:00", expected: time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)},
		{name: "empty", input: "", wantErr: true},
		{name: "date only", input: "2024-01-15", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %v, want %v", got, tt.expected)
		})
	}
}

func TestFormatTimestamp_RoundTrips(t *testing.T) {
	in := time.Date(2024, 7, 4, 23, 59, 59, 987654321, time.FixedZone("X", -5*3600))

	out, err := ParseTimestamp(FormatTimestamp(in))
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
	assert.Equal(t, "2024-07-04T23:59:59.987654321-05:00", FormatTimestamp(in))
}
