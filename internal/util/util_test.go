package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandomSuffix(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		s := RandomSuffix(5)
		assert.Len(t, s, 5)
		for _, r := range s {
			assert.Contains(t, suffixAlphabet, string(r))
		}
		seen[s] = true
	}

	// 50 draws from a 36^5 space should essentially never collide.
	assert.Greater(t, len(seen), 45)
}

func TestNewScanID(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 123_000_000, time.UTC)

	id := NewScanID(now)

	assert.True(t, strings.HasPrefix(id, "scan-1748779200123-"))
	parts := strings.Split(id, "-")
	assert.Len(t, parts, 3)
	assert.Len(t, parts[2], 5)
}

func TestEmailLocalPart(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"regular address", "maria@example.com", "maria"},
		{"no at sign", "maria", "maria"},
		{"empty", "", ""},
		{"leading at", "@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EmailLocalPart(tt.email))
		})
	}
}
