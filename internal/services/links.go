package services

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/surawits/vibeLink/internal/database"
	"github.com/surawits/vibeLink/internal/models"
	appErrors "github.com/surawits/vibeLink/pkg/errors"
	"gorm.io/gorm"
)

const linkCacheTTL = 30 * time.Second

func linkCacheKey(code string) string {
	return "link:" + code
}

// LinkSpec carries client-submitted link attributes. Nil means "not
// submitted"; create and update interpret that differently (see below).
type LinkSpec struct {
	URL                   *string
	Alias                 *string
	HasIntermediatePage   *bool
	IntermediatePageDelay *int
	IsActive              *bool
	ExpiresAt             *time.Time
	MaxClicks             *int
}

func validateTargetURL(raw string) error {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return appErrors.BadRequest("Invalid URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return appErrors.BadRequest("Invalid URL scheme: only http and https allowed")
	}
	if parsed.Host == "" {
		return appErrors.BadRequest("Invalid URL")
	}
	return nil
}

func authorizeLink(actor *models.User, link *models.Link) error {
	if link.UserID != actor.ID && !actor.IsAdmin() {
		return appErrors.ErrForbidden
	}
	return nil
}

// resolveShortCode picks the code for a new or re-aliased link. An explicit
// alias gets a single existence pre-check; the unique index remains the
// authoritative arbiter because the pre-check and the insert are not atomic.
func resolveShortCode(alias *string) (string, error) {
	if alias == nil {
		return GenerateShortCode()
	}
	if !ValidateAlias(*alias) {
		return "", appErrors.BadRequest("Invalid alias")
	}
	exists, err := codeExists(*alias)
	if err != nil {
		return "", err
	}
	if exists {
		return "", appErrors.ErrAliasTaken
	}
	return *alias, nil
}

func CreateLink(actor *models.User, spec *LinkSpec) (*models.Link, error) {
	if spec.URL == nil {
		return nil, appErrors.BadRequest("URL is required")
	}
	if err := validateTargetURL(*spec.URL); err != nil {
		return nil, err
	}
	if spec.IntermediatePageDelay != nil && *spec.IntermediatePageDelay < 0 {
		return nil, appErrors.BadRequest("Delay must be non-negative")
	}
	if spec.MaxClicks != nil && *spec.MaxClicks < 0 {
		return nil, appErrors.BadRequest("Max clicks must be non-negative")
	}

	shortCode, err := resolveShortCode(spec.Alias)
	if err != nil {
		return nil, err
	}

	link := models.Link{
		ShortCode:   shortCode,
		OriginalURL: *spec.URL,
		UserID:      actor.ID,
		IsActive:    true,
		ExpiresAt:   spec.ExpiresAt,
	}
	if spec.IsActive != nil {
		link.IsActive = *spec.IsActive
	}
	if spec.HasIntermediatePage != nil {
		link.HasIntermediatePage = *spec.HasIntermediatePage
	}
	if spec.IntermediatePageDelay != nil {
		link.IntermediatePageDelay = *spec.IntermediatePageDelay
	}
	if spec.MaxClicks != nil {
		link.MaxClicks = *spec.MaxClicks
	}

	EnforceDelayPolicy(actor, &link)

	if err := database.DB.Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the check-then-act race against a concurrent create.
			return nil, appErrors.ErrAliasTaken
		}
		return nil, err
	}

	LogSystem(fmt.Sprintf("Link /%s created", link.ShortCode), "INFO", "user: "+actor.ID)
	return &link, nil
}

// UpdateLink mirrors the dashboard's wire contract: url, alias, isActive and
// the interstitial fields are unchanged when omitted, expiresAt is cleared
// when omitted, maxClicks falls back to 0 when omitted.
func UpdateLink(actor *models.User, id uint, spec *LinkSpec) (*models.Link, error) {
	var link models.Link
	if err := database.DB.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrLinkNotFound
		}
		return nil, err
	}
	if err := authorizeLink(actor, &link); err != nil {
		return nil, err
	}

	oldCode := link.ShortCode

	if spec.URL != nil {
		if err := validateTargetURL(*spec.URL); err != nil {
			return nil, err
		}
		link.OriginalURL = *spec.URL
	}
	if spec.Alias != nil && *spec.Alias != link.ShortCode {
		code, err := resolveShortCode(spec.Alias)
		if err != nil {
			return nil, err
		}
		link.ShortCode = code
	}
	if spec.IsActive != nil {
		link.IsActive = *spec.IsActive
	}
	if spec.HasIntermediatePage != nil {
		link.HasIntermediatePage = *spec.HasIntermediatePage
	}
	if spec.IntermediatePageDelay != nil {
		if *spec.IntermediatePageDelay < 0 {
			return nil, appErrors.BadRequest("Delay must be non-negative")
		}
		link.IntermediatePageDelay = *spec.IntermediatePageDelay
	}
	link.ExpiresAt = spec.ExpiresAt
	link.MaxClicks = 0
	if spec.MaxClicks != nil {
		if *spec.MaxClicks < 0 {
			return nil, appErrors.BadRequest("Max clicks must be non-negative")
		}
		link.MaxClicks = *spec.MaxClicks
	}

	EnforceDelayPolicy(actor, &link)

	if err := database.DB.Save(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, appErrors.ErrAliasTaken
		}
		return nil, err
	}

	database.CacheDelete(linkCacheKey(oldCode), linkCacheKey(link.ShortCode))
	return &link, nil
}

func DeleteLink(actor *models.User, id uint) error {
	var link models.Link
	if err := database.DB.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrLinkNotFound
		}
		return err
	}
	if err := authorizeLink(actor, &link); err != nil {
		return err
	}

	// The store cascades visit logs, but deleting them in the same
	// transaction keeps the no-orphans contract independent of the engine.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", link.ID).Delete(&models.VisitLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&link).Error
	})
	if err != nil {
		return err
	}

	database.CacheDelete(linkCacheKey(link.ShortCode))
	LogSystem(fmt.Sprintf("Link /%s deleted", link.ShortCode), "INFO", "user: "+actor.ID)
	return nil
}

// ResetLinkStats clears all visit logs and zeroes the click counter in a
// single transaction so partial completion is never observable.
func ResetLinkStats(actor *models.User, id uint) error {
	var link models.Link
	if err := database.DB.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrLinkNotFound
		}
		return err
	}
	if err := authorizeLink(actor, &link); err != nil {
		return err
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", link.ID).Delete(&models.VisitLog{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Link{}).Where("id = ?", link.ID).Update("clicks", 0).Error
	})
	if err != nil {
		return err
	}

	database.CacheDelete(linkCacheKey(link.ShortCode))
	return nil
}

// GetLinkAuthorized fetches a link and checks the caller may read its stats.
func GetLinkAuthorized(actor *models.User, id uint) (*models.Link, error) {
	var link models.Link
	if err := database.DB.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrLinkNotFound
		}
		return nil, err
	}
	if err := authorizeLink(actor, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// ListLinks returns the caller's own links, newest first.
func ListLinks(actor *models.User) ([]models.Link, error) {
	var links []models.Link
	err := database.DB.Where("user_id = ?", actor.ID).Order("created_at desc").Find(&links).Error
	return links, err
}

// ListAllLinks returns every link with owner name/email joined. Privileged
// callers only; the handler gates the role.
func ListAllLinks() ([]models.Link, error) {
	var links []models.Link
	err := database.DB.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Order("created_at desc").
		Find(&links).Error
	return links, err
}

// FindLinkByCode resolves a short code for the public redirector, consulting
// the cache first. Only links without a click limit are cached: the limit
// check needs a live counter, and every other cached field is invalidated on
// update, delete and reset.
func FindLinkByCode(code string) (*models.Link, error) {
	var cached models.Link
	if err := database.CacheGet(linkCacheKey(code), &cached); err == nil {
		return &cached, nil
	}

	var link models.Link
	if err := database.DB.First(&link, "short_code = ?", code).Error; err != nil {
		return nil, err
	}

	if link.MaxClicks == 0 {
		database.CacheSet(linkCacheKey(code), &link, linkCacheTTL)
	}
	return &link, nil
}
