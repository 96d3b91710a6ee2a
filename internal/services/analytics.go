package services

import (
	"strings"
	"time"

	"github.com/surawits/vibeLink/internal/database"
	"github.com/surawits/vibeLink/internal/models"
)

type ChartData struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

type AggregatedStats struct {
	ClicksOverTime ChartData      `json:"clicksOverTime"`
	DeviceStats    map[string]int `json:"deviceStats"`
}

// AggregateStats computes the trailing 7-day click series and device counts
// for a link. The series always holds exactly 7 entries, one per calendar day
// (UTC) from 6 days ago through today; sparse days are zero-filled, never
// omitted. Device counts cover the same window.
func AggregateStats(linkID uint) (*AggregatedStats, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	windowStart := today.AddDate(0, 0, -6)

	var logs []models.VisitLog
	err := database.DB.
		Select("created_at", "device").
		Where("link_id = ? AND created_at >= ?", linkID, windowStart).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	clicksByDate := make(map[string]int)
	deviceStats := make(map[string]int)
	for _, log := range logs {
		date := log.CreatedAt.UTC().Format("2006-01-02")
		clicksByDate[date]++

		device := log.Device
		if device == "" {
			device = "Unknown"
		}
		deviceStats[device]++
	}

	chart := ChartData{
		Labels: make([]string, 0, 7),
		Data:   make([]int, 0, 7),
	}
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		chart.Labels = append(chart.Labels, date)
		chart.Data = append(chart.Data, clicksByDate[date])
	}

	return &AggregatedStats{
		ClicksOverTime: chart,
		DeviceStats:    deviceStats,
	}, nil
}

// ListVisits returns a link's raw visit logs, newest first.
func ListVisits(linkID uint) ([]models.VisitLog, error) {
	var logs []models.VisitLog
	err := database.DB.Where("link_id = ?", linkID).Order("created_at desc").Find(&logs).Error
	return logs, err
}

// ExportCSV serializes a link's visit logs to the flat export format. The
// column order is a compatibility surface; only the Referrer field is quoted,
// with embedded quotes doubled.
func ExportCSV(linkID uint) ([]byte, error) {
	logs, err := ListVisits(linkID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("Date,IP,Device,OS,Browser,Referrer,City,Country\n")
	for i, log := range logs {
		if i > 0 {
			b.WriteString("\n")
		}
		referrer := strings.ReplaceAll(log.Referrer, `"`, `""`)
		b.WriteString(log.CreatedAt.UTC().Format(time.RFC3339))
		b.WriteString(",")
		b.WriteString(log.IP)
		b.WriteString(",")
		b.WriteString(log.Device)
		b.WriteString(",")
		b.WriteString(log.OS)
		b.WriteString(",")
		b.WriteString(log.Browser)
		b.WriteString(`,"`)
		b.WriteString(referrer)
		b.WriteString(`",`)
		b.WriteString(log.City)
		b.WriteString(",")
		b.WriteString(log.Country)
	}
	return []byte(b.String()), nil
}
