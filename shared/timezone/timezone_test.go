package timezone_test

import (
	"testing"
	"time"

	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUsesLocation(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", input: "2025-03-01", want: time.Date(2025, 3, 1, 0, 0, 0, 0, timezone.GetLocation())},
		{name: "rfc3339", input: "2025-03-01T10:30:00Z", want: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)},
		{name: "local date time", input: "2025-03-01T08:00:00", want: time.Date(2025, 3, 1, 8, 0, 0, 0, timezone.GetLocation())},
		{name: "garbage", input: "next tuesday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, timezone.ErrInvalidDate)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestParseOptionalDate(t *testing.T) {
	got, err := timezone.ParseOptionalDate("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = timezone.ParseOptionalDate("2025-12-24")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 24, got.Day())
}

func TestFormatOptional(t *testing.T) {
	assert.Empty(t, timezone.FormatOptional(nil, constant.DateFormat))
	assert.Empty(t, timezone.FormatOptional(&time.Time{}, constant.DateFormat))

	moment := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, timezone.Format(moment, constant.DateFormat), timezone.FormatOptional(&moment, constant.DateFormat))
}
