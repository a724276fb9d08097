package utils

import (
	"academia/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartTokenCleanup schedules a daily purge of expired blacklisted access
// tokens and expired or revoked refresh tokens. Returns the cron runner so
// callers can stop it on shutdown.
func StartTokenCleanup(db *gorm.DB) *cron.Cron {
	c := cron.New()

	c.AddFunc("@daily", func() {
		now := time.Now()

		res := db.Where("expired_at < ?", now).Delete(&models.InvalidToken{})
		if res.Error != nil {
			log.Printf("[TOKEN-CLEANUP] Error purging invalid tokens: %v", res.Error)
		} else if res.RowsAffected > 0 {
			log.Printf("[TOKEN-CLEANUP] Purged %d expired invalid tokens", res.RowsAffected)
		}

		res = db.Where("expires_at < ? OR revoked_at IS NOT NULL", now).Delete(&models.RefreshToken{})
		if res.Error != nil {
			log.Printf("[TOKEN-CLEANUP] Error purging refresh tokens: %v", res.Error)
		} else if res.RowsAffected > 0 {
			log.Printf("[TOKEN-CLEANUP] Purged %d stale refresh tokens", res.RowsAffected)
		}
	})

	c.Start()
	return c
}
