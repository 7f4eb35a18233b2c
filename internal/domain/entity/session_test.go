package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Valid(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{
			name:    "live session",
			session: Session{ExpiresAt: now.Add(time.Hour)},
			want:    true,
		},
		{
			name:    "revoked session",
			session: Session{ExpiresAt: now.Add(time.Hour), Revoked: true},
			want:    false,
		},
		{
			name:    "expired session",
			session: Session{ExpiresAt: now.Add(-time.Minute)},
			want:    false,
		},
		{
			name:    "revoked and expired",
			session: Session{ExpiresAt: now.Add(-time.Minute), Revoked: true},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.Valid(now))
		})
	}
}
