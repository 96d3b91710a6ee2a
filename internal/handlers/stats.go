package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/surawits/vibeLink/internal/middleware"
	"github.com/surawits/vibeLink/internal/services"
)

// GetLinkStats handles GET /api/links/:id/stats — raw visit logs, newest first.
func GetLinkStats(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := parseLinkID(c)
	if !ok {
		return
	}

	link, err := services.GetLinkAuthorized(user, id)
	if err != nil {
		respondError(c, err)
		return
	}

	logs, err := services.ListVisits(link.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GetAggregatedStats handles GET /api/links/:id/stats/aggregated
func GetAggregatedStats(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := parseLinkID(c)
	if !ok {
		return
	}

	link, err := services.GetLinkAuthorized(user, id)
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := services.AggregateStats(link.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ResetLinkStats handles DELETE /api/links/:id/reset — clears visit logs and
// the click counter together.
func ResetLinkStats(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := parseLinkID(c)
	if !ok {
		return
	}

	if err := services.ResetLinkStats(user, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ExportLinkStats handles GET /api/links/:id/export — visit logs as CSV.
func ExportLinkStats(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := parseLinkID(c)
	if !ok {
		return
	}

	link, err := services.GetLinkAuthorized(user, id)
	if err != nil {
		respondError(c, err)
		return
	}

	csv, err := services.ExportCSV(link.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "vibeLink_stats_"+link.ShortCode+".csv"))
	c.Data(http.StatusOK, "text/csv", csv)
}
