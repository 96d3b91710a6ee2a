package models

import "time"

// SystemConfig is a singleton key/value row per tunable.
type SystemConfig struct {
	Key   string `gorm:"primaryKey;type:text" json:"key"`
	Value string `gorm:"not null" json:"value"`
}

const ConfigRedirectDelay = "redirect_delay"

// SystemLog is an operational log line. Writes are fire-and-forget.
type SystemLog struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	Message   string    `gorm:"not null" json:"message"`
	Level     string    `gorm:"default:'INFO'" json:"level"`
	Context   string    `json:"context"`
	CreatedAt time.Time `json:"createdAt"`
}
