package services

import (
	"fmt"

	"github.com/surawits/vibeLink/internal/database"
	"github.com/surawits/vibeLink/internal/models"
	"gorm.io/gorm"
)

// RecordVisit captures telemetry for a resolved redirect. Both side effects
// run as detached goroutines: the HTTP response must never wait on them, and
// their failures go to the system log only.
func RecordVisit(link *models.Link, ip, userAgent, referrer string) {
	device, os, browser := ClassifyUserAgent(userAgent)

	visit := models.VisitLog{
		LinkID:    link.ID,
		IP:        ip,
		UserAgent: userAgent,
		Referrer:  referrer,
		Device:    device,
		OS:        os,
		Browser:   browser,
		Country:   "Unknown",
		City:      "Unknown",
	}

	go func() {
		if err := database.DB.Create(&visit).Error; err != nil {
			LogSystem(fmt.Sprintf("Failed to log visit for /%s", link.ShortCode), "ERROR", err.Error())
		}
	}()

	go func() {
		// Atomic add at the store level, concurrent redirects never lose
		// increments.
		err := database.DB.Model(&models.Link{}).
			Where("id = ?", link.ID).
			UpdateColumn("clicks", gorm.Expr("clicks + ?", 1)).Error
		if err != nil {
			LogSystem(fmt.Sprintf("Failed to update clicks for /%s", link.ShortCode), "ERROR", err.Error())
		}
	}()
}
