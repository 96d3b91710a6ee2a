package services

import (
	"strconv"
	"time"

	"github.com/surawits/vibeLink/internal/database"
	"github.com/surawits/vibeLink/internal/models"
	appErrors "github.com/surawits/vibeLink/pkg/errors"
	"gorm.io/gorm/clause"
)

const (
	defaultRedirectDelay = 5
	policyCacheKey       = "policy:redirect_delay"
	policyCacheTTL       = time.Minute
)

// RedirectDelay returns the organization-wide forced countdown seconds,
// falling back to the default when the config row is missing or unreadable.
func RedirectDelay() int {
	var cached int
	if err := database.CacheGet(policyCacheKey, &cached); err == nil {
		return cached
	}

	var cfg models.SystemConfig
	if err := database.DB.First(&cfg, "key = ?", models.ConfigRedirectDelay).Error; err != nil {
		return defaultRedirectDelay
	}
	delay, err := strconv.Atoi(cfg.Value)
	if err != nil || delay < 0 {
		return defaultRedirectDelay
	}

	database.CacheSet(policyCacheKey, delay, policyCacheTTL)
	return delay
}

// SetRedirectDelay upserts the policy value. Privileged principals only.
func SetRedirectDelay(actor *models.User, seconds int) error {
	if !actor.IsAdmin() {
		return appErrors.ErrForbidden
	}
	if seconds < 0 {
		return appErrors.BadRequest("Delay must be non-negative")
	}

	cfg := models.SystemConfig{Key: models.ConfigRedirectDelay, Value: strconv.Itoa(seconds)}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&cfg).Error
	if err != nil {
		return err
	}

	database.CacheDelete(policyCacheKey)
	return nil
}

// EnforceDelayPolicy forces the interstitial settings on links written by
// non-privileged principals, irrespective of the submitted values. Invoked on
// every create and every update so a link edited later by a non-privileged
// principal is coerced at that moment.
func EnforceDelayPolicy(actor *models.User, link *models.Link) {
	if actor.IsAdmin() {
		return
	}
	link.HasIntermediatePage = true
	link.IntermediatePageDelay = RedirectDelay()
}
