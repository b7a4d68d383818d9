package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateCronSchedule(t *testing.T) {
	valid := []struct {
		name     string
		schedule string
	}{
		{"daily digest at 5:30", "30 5 * * *"},
		{"every 6 hours", "0 */6 * * *"},
		{"weekdays at 9:30", "30 9 * * 1-5"},
		{"every minute", "* * * * *"},
		{"first of month", "0 0 1 * *"},
		{"comma lists", "15,45 */2 * * 1,3,5"},
	}
	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateCronSchedule(tt.schedule))
		})
	}

	invalid := []struct {
		name     string
		schedule string
	}{
		{"empty", ""},
		{"too few fields", "0 0"},
		{"too many fields", "0 0 * * * * *"},
		{"minute out of range", "60 0 * * *"},
		{"hour out of range", "0 24 * * *"},
		{"weekday out of range", "0 0 * * 8"},
		{"random text", "not a schedule"},
		{"descriptor syntax not enabled", "@daily"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCronSchedule(tt.schedule)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid cron schedule")
		})
	}
}

func TestValidateCronSchedule_ErrorIncludesValue(t *testing.T) {
	err := ValidateCronSchedule("bogus")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cron schedule 'bogus'")
}

func TestValidateTimezone(t *testing.T) {
	for _, tz := range []string{
		"UTC", "Local", "Europe/Madrid", "America/Mexico_City",
		"America/Argentina/Buenos_Aires", "America/Bogota", "Asia/Tokyo",
	} {
		t.Run(tz, func(t *testing.T) {
			assert.NoError(t, ValidateTimezone(tz))
		})
	}

	invalid := []struct {
		name     string
		timezone string
	}{
		{"empty", ""},
		{"unknown zone", "Invalid/Zone"},
		{"offset instead of IANA name", "+01:00"},
		{"typo", "Europa/Madrid"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimezone(tt.timezone)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid timezone")
		})
	}
}

func TestValidateDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		min      time.Duration
		max      time.Duration
		wantErr  string
	}{
		{"at min", time.Minute, time.Minute, 4 * time.Hour, ""},
		{"at max", 4 * time.Hour, time.Minute, 4 * time.Hour, ""},
		{"inside range", 30 * time.Minute, time.Minute, 4 * time.Hour, ""},
		{"single-value range", 5 * time.Second, 5 * time.Second, 5 * time.Second, ""},
		{"zero inside range", 0, 0, 10 * time.Second, ""},
		{"below min", 30 * time.Second, time.Minute, 4 * time.Hour, "below minimum"},
		{"above max", 5 * time.Hour, time.Minute, 4 * time.Hour, "exceeds maximum"},
		{"min greater than max", 30 * time.Second, time.Minute, time.Second, "invalid range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDuration(tt.duration, tt.min, tt.max)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateDuration_ErrorIncludesValues(t *testing.T) {
	err := ValidateDuration(30*time.Second, time.Minute, 4*time.Hour)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "30s")
	assert.Contains(t, err.Error(), "1m0s")
}

func TestValidateIntRange(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		min     int
		max     int
		wantErr string
	}{
		{"at min", 1, 1, 50, ""},
		{"at max", 50, 1, 50, ""},
		{"inside range", 5, 1, 50, ""},
		{"single-value range", 5, 5, 5, ""},
		{"negative range", -5, -10, -1, ""},
		{"health port low bound", 1024, 1024, 65535, ""},
		{"below min", 0, 1, 50, "below minimum"},
		{"above max", 51, 1, 50, "exceeds maximum"},
		{"port below range", 80, 1024, 65535, "below minimum"},
		{"port above range", 70000, 1024, 65535, "exceeds maximum"},
		{"min greater than max", 5, 10, 1, "invalid range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIntRange(tt.value, tt.min, tt.max)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidatePositiveDuration(t *testing.T) {
	for _, d := range []time.Duration{
		time.Nanosecond, time.Millisecond, time.Second, 30 * time.Minute, 24 * time.Hour,
	} {
		assert.NoError(t, ValidatePositiveDuration(d), "duration %v", d)
	}

	for _, d := range []time.Duration{0, -time.Second, -time.Hour} {
		err := ValidatePositiveDuration(d)
		assert.Error(t, err, "duration %v", d)
		assert.Contains(t, err.Error(), "must be positive")
	}
}

func TestValidatePositiveDuration_ErrorIncludesValue(t *testing.T) {
	err := ValidatePositiveDuration(-30 * time.Minute)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "-30m")
}
