package model

import "time"

// Banner is a promotional banner shown on the storefront. StartDate and
// EndDate are "YYYY-MM-DD" strings; an empty value means unbounded.
type Banner struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Title           string    `json:"title" bson:"title"`
	Description     string    `json:"description" bson:"description"`
	ImageURL        string    `json:"imageUrl" bson:"imageUrl"`
	LinkURL         string    `json:"linkUrl,omitempty" bson:"linkUrl,omitempty"`
	IsActive        bool      `json:"isActive" bson:"isActive"`
	Priority        int       `json:"priority" bson:"priority"`
	StartDate       string    `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate         string    `json:"endDate,omitempty" bson:"endDate,omitempty"`
	BackgroundColor string    `json:"backgroundColor,omitempty" bson:"backgroundColor,omitempty"`
	TextColor       string    `json:"textColor,omitempty" bson:"textColor,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// VisibleOn reports whether the banner should be shown on the given date
// ("YYYY-MM-DD"). Inactive banners are never visible; date bounds are
// inclusive and only checked when set.
func (b *Banner) VisibleOn(date string) bool {
	if !b.IsActive {
		return false
	}
	if b.StartDate != "" && date < b.StartDate {
		return false
	}
	if b.EndDate != "" && date > b.EndDate {
		return false
	}
	return true
}
