package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/surawits/vibeLink/internal/config"
	"github.com/surawits/vibeLink/internal/database"
	"github.com/surawits/vibeLink/internal/models"
	"github.com/surawits/vibeLink/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB initializes an in-memory SQLite DB for testing
func SetupTestDB() {
	db, _ := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	database.DB = db
	database.DB.AutoMigrate(
		&models.User{},
		&models.Link{},
		&models.VisitLog{},
		&models.SystemConfig{},
		&models.SystemLog{},
	)

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{
			JWTSecret: "test-secret",
			ClientURL: "http://localhost:4200",
		}
		logger.Init("test")
	}
}

func newRedirectRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(PageTemplates())
	r.GET("/:code", ResolveShortCode)
	return r
}

func seedLink(link *models.Link) *models.Link {
	database.DB.Create(link)
	return link
}

func getCode(r *gin.Engine, code, userAgent, referrer string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/"+code, nil)
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	if referrer != "" {
		req.Header.Set("Referer", referrer)
	}
	r.ServeHTTP(w, req)
	return w
}

func clicksOf(t *testing.T, id uint) int {
	t.Helper()
	var link models.Link
	database.DB.First(&link, id)
	return link.Clicks
}

func TestResolve_NotFound(t *testing.T) {
	SetupTestDB()
	r := newRedirectRouter()

	w := getCode(r, "missing0", "", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Vibe Not Found")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestResolve_InactiveDoesNotCount(t *testing.T) {
	SetupTestDB()
	r := newRedirectRouter()
	link := seedLink(&models.Link{ShortCode: "rd_off", OriginalURL: "https://example.com", UserID: "u", IsActive: false})

	w := getCode(r, "rd_off", "", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Vibe Check Failed")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, clicksOf(t, link.ID))
	var logCount int64
	database.DB.Model(&models.VisitLog{}).Where("link_id = ?", link.ID).Count(&logCount)
	assert.Zero(t, logCount)
}

func TestResolve_Expired(t *testing.T) {
	SetupTestDB()
	r := newRedirectRouter()
	past := time.Now().Add(-time.Hour)
	link := seedLink(&models.Link{ShortCode: "rd_exp", OriginalURL: "https://example.com", UserID: "u", IsActive: true, ExpiresAt: &past})

	w := getCode(r, "rd_exp", "", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Vibe Expired")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, clicksOf(t, link.ID))
}

func TestResolve_LimitReached(t *testing.T) {
	SetupTestDB()
	r := newRedirectRouter()
	link := seedLink(&models.Link{ShortCode: "rd_cap", OriginalURL: "https://example.com", UserID: "u", IsActive: true, MaxClicks: 2, Clicks: 2})

	w := getCode(r, "rd_cap", "", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Vibe Limit Reached")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, clicksOf(t, link.ID))
}

func TestResolve_DirectRedirect(t *testing.T) {
	SetupTestDB()
	r := newRedirectRouter()
	link := seedLink(&models.Link{ShortCode: "rd_go", OriginalURL: "https://example.com/page", UserID: "u", IsActive: true})

	ua := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	w := getCode(r, "rd_go", ua, "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://example.com/page", w.Header().Get("Location"))

	// Telemetry is detached; only eventual visibility is guaranteed.
	assert.Eventually(t, func() bool {
		return clicksOf(t, link.ID) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		var visit models.VisitLog
		if err := database.DB.First(&visit, "link_id = ?", link.ID).Error; err != nil {
			return false
		}
		return visit.Device == "Desktop" &&
			visit.OS == "Windows" &&
			visit.Browser == "Chrome" &&
			visit.Referrer == "direct" &&
			visit.Country == "Unknown"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestResolve_SequentialClicksCountExactly(t *testing.T) {
	SetupTestDB()
	r := newRedirectRouter()
	link := seedLink(&models.Link{ShortCode: "rd_many", OriginalURL: "https://example.com", UserID: "u", IsActive: true})

	const n = 5
	for i := 0; i < n; i++ {
		w := getCode(r, "rd_many", "", "")
		assert.Equal(t, http.StatusFound, w.Code)
	}

	assert.Eventually(t, func() bool {
		return clicksOf(t, link.ID) == n
	}, 2*time.Second, 10*time.Millisecond)
}

func TestResolve_Interstitial(t *testing.T) {
	SetupTestDB()
	r := newRedirectRouter()
	seedLink(&models.Link{
		ShortCode:             "rd_wait",
		OriginalURL:           "https://example.com/slow",
		UserID:                "u",
		IsActive:              true,
		HasIntermediatePage:   true,
		IntermediatePageDelay: 5,
	})

	w := getCode(r, "rd_wait", "", "https://ref.example/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<span id="timer">5</span>`)
	assert.Contains(t, body, "https://example.com/slow")
	assert.Contains(t, body, "Go Now")
	assert.Contains(t, body, "Go Back")
	assert.Contains(t, body, "Close Tab")
}

func TestResolve_InterstitialFlagWithoutDelayRedirects(t *testing.T) {
	SetupTestDB()
	r := newRedirectRouter()
	seedLink(&models.Link{
		ShortCode:           "rd_zero",
		OriginalURL:         "https://example.com",
		UserID:              "u",
		IsActive:            true,
		HasIntermediatePage: true,
	})

	w := getCode(r, "rd_zero", "", "")
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestResolve_ForwardedForWins(t *testing.T) {
	SetupTestDB()
	r := newRedirectRouter()
	link := seedLink(&models.Link{ShortCode: "rd_fwd", OriginalURL: "https://example.com", UserID: "u", IsActive: true})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/rd_fwd", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Eventually(t, func() bool {
		var visit models.VisitLog
		if err := database.DB.First(&visit, "link_id = ?", link.ID).Error; err != nil {
			return false
		}
		return visit.IP == "198.51.100.7"
	}, 2*time.Second, 10*time.Millisecond)
}
