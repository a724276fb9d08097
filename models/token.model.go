package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is one issued refresh token. Rotated on use, revoked on logout
// and on user deletion, purged by the cleanup scheduler once expired.
type RefreshToken struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uint       `json:"userId" gorm:"index;not null"`
	Token     string     `json:"-" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time  `json:"expiresAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// InvalidToken blacklists an access token after logout until its natural
// expiry.
type InvalidToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	ExpiredAt time.Time `json:"expiredAt"`
	CreatedAt time.Time `json:"createdAt"`
}
