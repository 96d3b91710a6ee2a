package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/surawits/vibeLink/internal/middleware"
	"github.com/surawits/vibeLink/internal/services"
	appErrors "github.com/surawits/vibeLink/pkg/errors"
	"github.com/surawits/vibeLink/pkg/logger"
)

type CreateLinkRequest struct {
	URL                   string  `json:"url" binding:"required"`
	Alias                 *string `json:"alias" binding:"omitempty,min=1"`
	HasIntermediatePage   *bool   `json:"hasIntermediatePage"`
	IntermediatePageDelay *int    `json:"intermediatePageDelay" binding:"omitempty,gte=0"`
	IsActive              *bool   `json:"isActive"`
	ExpiresAt             *string `json:"expiresAt"`
	MaxClicks             *int    `json:"maxClicks" binding:"omitempty,gte=0"`
}

type UpdateLinkRequest struct {
	URL                   *string `json:"url"`
	Alias                 *string `json:"alias" binding:"omitempty,min=1"`
	HasIntermediatePage   *bool   `json:"hasIntermediatePage"`
	IntermediatePageDelay *int    `json:"intermediatePageDelay" binding:"omitempty,gte=0"`
	IsActive              *bool   `json:"isActive"`
	ExpiresAt             *string `json:"expiresAt"`
	MaxClicks             *int    `json:"maxClicks" binding:"omitempty,gte=0"`
}

func respondError(c *gin.Context, err error) {
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled request error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func parseExpiresAt(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, appErrors.BadRequest("expiresAt must be an ISO timestamp")
	}
	return &t, nil
}

func parseLinkID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid link ID"})
		return 0, false
	}
	return uint(id), true
}

// ListLinks handles GET /api/links — links owned by the caller, newest first.
func ListLinks(c *gin.Context) {
	user := middleware.CurrentUser(c)

	links, err := services.ListLinks(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// AdminListAllLinks handles GET /api/links/admin/all — every link with owner
// name/email joined. Route is admin-gated.
func AdminListAllLinks(c *gin.Context) {
	links, err := services.ListAllLinks()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// CreateLink handles POST /api/links
func CreateLink(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiresAt, err := parseExpiresAt(req.ExpiresAt)
	if err != nil {
		respondError(c, err)
		return
	}

	link, err := services.CreateLink(user, &services.LinkSpec{
		URL:                   &req.URL,
		Alias:                 req.Alias,
		HasIntermediatePage:   req.HasIntermediatePage,
		IntermediatePageDelay: req.IntermediatePageDelay,
		IsActive:              req.IsActive,
		ExpiresAt:             expiresAt,
		MaxClicks:             req.MaxClicks,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// UpdateLink handles PUT /api/links/:id
func UpdateLink(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := parseLinkID(c)
	if !ok {
		return
	}

	var req UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expiresAt, err := parseExpiresAt(req.ExpiresAt)
	if err != nil {
		respondError(c, err)
		return
	}

	link, err := services.UpdateLink(user, id, &services.LinkSpec{
		URL:                   req.URL,
		Alias:                 req.Alias,
		HasIntermediatePage:   req.HasIntermediatePage,
		IntermediatePageDelay: req.IntermediatePageDelay,
		IsActive:              req.IsActive,
		ExpiresAt:             expiresAt,
		MaxClicks:             req.MaxClicks,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// DeleteLink handles DELETE /api/links/:id
func DeleteLink(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := parseLinkID(c)
	if !ok {
		return
	}

	if err := services.DeleteLink(user, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type setDelayRequest struct {
	Value *int `json:"value" binding:"required,gte=0"`
}

// GetRedirectDelay handles GET /api/links/config/delay (admin only)
func GetRedirectDelay(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"value": services.RedirectDelay()})
}

// SetRedirectDelay handles POST /api/links/config/delay (admin only)
func SetRedirectDelay(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req setDelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SetRedirectDelay(user, *req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
