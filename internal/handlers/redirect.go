package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/surawits/vibeLink/internal/config"
	"github.com/surawits/vibeLink/internal/services"
	"gorm.io/gorm"
)

func renderErrorPage(c *gin.Context, status int, title, message string) {
	c.HTML(status, "error.html", gin.H{
		"Title":     title,
		"Message":   message,
		"ClientURL": config.AppConfig.ClientURL,
	})
}

// visitorIP prefers the first forwarded-for hop, then the transport peer.
func visitorIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

// ResolveShortCode handles GET /:code — the public redirector state machine.
// Telemetry is dispatched as detached work; the response never waits on it.
func ResolveShortCode(c *gin.Context) {
	code := c.Param("code")
	services.LogSystem(fmt.Sprintf("Incoming redirect request for /%s", code), "DEBUG", "")

	link, err := services.FindLinkByCode(code)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			services.LogSystem(fmt.Sprintf("Lookup failed for /%s", code), "ERROR", err.Error())
		} else {
			services.LogSystem(fmt.Sprintf("Link /%s not found", code), "WARN", "")
		}
		renderErrorPage(c, http.StatusNotFound, "Vibe Not Found", "The link you are looking for has faded away.")
		return
	}

	if !link.IsActive {
		services.LogSystem(fmt.Sprintf("Link /%s is inactive", code), "WARN", "")
		renderErrorPage(c, http.StatusForbidden, "Vibe Check Failed", "This link is currently taking a break.")
		return
	}

	if link.ExpiresAt != nil && link.ExpiresAt.Before(time.Now()) {
		services.LogSystem(fmt.Sprintf("Link /%s is expired", code), "WARN", "")
		renderErrorPage(c, http.StatusForbidden, "Vibe Expired", "This link has passed its expiration date.")
		return
	}

	if link.MaxClicks > 0 && link.Clicks >= link.MaxClicks {
		services.LogSystem(fmt.Sprintf("Link /%s reached its click limit", code), "WARN", "")
		renderErrorPage(c, http.StatusForbidden, "Vibe Limit Reached", "This link has reached its maximum number of clicks.")
		return
	}

	ip := visitorIP(c)
	userAgent := c.Request.UserAgent()
	if userAgent == "" {
		userAgent = "unknown"
	}
	referrer := c.Request.Referer()
	if referrer == "" {
		referrer = "direct"
	}

	services.LogSystem(
		fmt.Sprintf("Redirecting /%s to %s", code, link.OriginalURL),
		"INFO",
		fmt.Sprintf("IP: %s", ip),
	)
	services.RecordVisit(link, ip, userAgent, referrer)

	if link.HasIntermediatePage && link.IntermediatePageDelay > 0 {
		c.HTML(http.StatusOK, "interstitial.html", gin.H{
			"Delay": link.IntermediatePageDelay,
			"URL":   link.OriginalURL,
		})
		return
	}

	c.Redirect(http.StatusFound, link.OriginalURL)
}
