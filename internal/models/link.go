package models

import "time"

type Link struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ShortCode   string `gorm:"uniqueIndex;not null" json:"shortCode"`
	OriginalURL string `gorm:"not null" json:"originalUrl"`
	UserID      string `gorm:"index;not null" json:"userId"`

	IsActive              bool `gorm:"default:true" json:"isActive"`
	HasIntermediatePage   bool `gorm:"default:false" json:"hasIntermediatePage"`
	IntermediatePageDelay int  `gorm:"default:0" json:"intermediatePageDelay"`

	ExpiresAt *time.Time `json:"expiresAt"`
	MaxClicks int        `gorm:"default:0" json:"maxClicks"` // 0 = unlimited
	Clicks    int        `gorm:"default:0" json:"clicks"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Logs []VisitLog `gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE" json:"-"`
}

// VisitLog is one record per successfully resolved redirect. Append-only;
// removed only in bulk when a link's stats are reset.
type VisitLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LinkID    uint      `gorm:"index;not null" json:"linkId"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	Referrer  string    `json:"referrer"`
	Device    string    `json:"device"`
	OS        string    `gorm:"column:os" json:"os"`
	Browser   string    `json:"browser"`
	Country   string    `json:"country"` // geo lookup not implemented
	City      string    `json:"city"`
	CreatedAt time.Time `json:"createdAt"`
}
