package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		in   string
		want UserRole
		ok   bool
	}{
		{"performer", UserRolePerformer, true},
		{"distributor", UserRoleDistributor, true},
		{"venue", UserRoleDistributor, true},
		{"admin", UserRoleAdmin, true},
		{"  Venue  ", UserRoleDistributor, true},
		{"PERFORMER", UserRolePerformer, true},
		{"dj", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeRole(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestOfferStatusIsConcluding(t *testing.T) {
	assert.True(t, OfferStatusClosed.IsConcluding())
	assert.True(t, OfferStatusCancelled.IsConcluding())
	assert.False(t, OfferStatusOpen.IsConcluding())
	assert.False(t, OfferStatus("concluded").IsConcluding())
}
