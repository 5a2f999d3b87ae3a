package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1990-04-21", "1990-04-21"},
		{"1990-4-2", "1990-04-02"},
		{"21/04/1990", "1990-04-21"},
		{"  2000-01-01 ", "2000-01-01"},
	}
	for _, tt := range tests {
		got, err := NormalizeDate(tt.in)
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNormalizeDateRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "not a date", "1990-13-01", "04-21-1990"} {
		_, err := NormalizeDate(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"14:30:00", "14:30:00"},
		{"14:30", "14:30:00"},
		{"9:05", "09:05:00"},
		{"2:04 PM", "14:04:00"},
	}
	for _, tt := range tests {
		got, err := NormalizeTime(tt.in)
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNormalizeTimeRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "25:00", "noon"} {
		_, err := NormalizeTime(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestAgeBeforeBirthday(t *testing.T) {
	now := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	age, err := Age("2000-03-15", now)
	assert.NoError(t, err)
	assert.Equal(t, 23, age)
}

func TestAgeOnBirthday(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	age, err := Age("2000-03-15", now)
	assert.NoError(t, err)
	assert.Equal(t, 24, age)
}

func TestAgeAfterBirthday(t *testing.T) {
	now := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	age, err := Age("2000-03-15", now)
	assert.NoError(t, err)
	assert.Equal(t, 24, age)
}

func TestAgeMalformedDOB(t *testing.T) {
	_, err := Age("garbage", time.Now())
	assert.Error(t, err)
}

func TestContains(t *testing.T) {
	list := []string{"Scheduled", "Completed"}
	assert.True(t, Contains("Scheduled", list))
	assert.False(t, Contains("scheduled", list))
	assert.False(t, Contains("No Show", list))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Jane Doe", NormalizeName("  Jane   Doe "))
	assert.Equal(t, "", NormalizeName("   "))
}
