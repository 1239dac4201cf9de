package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	LayoutBanner     = "Banner"
	LayoutFAQ        = "FAQ"
	LayoutCategories = "Categories"
)

// BannerImage is a reference to an uploaded banner asset.
type BannerImage struct {
	PublicID string `json:"public_id,omitempty"`
	URL      string `json:"url,omitempty"`
}

type Banner struct {
	Image    BannerImage `json:"image"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Category struct {
	Title string `json:"title"`
}

// Layout is one site content block. Exactly one row exists per Type; the
// non-matching payload fields stay empty.
type Layout struct {
	LayoutID   uuid.UUID  `json:"layout_id"`
	Type       string     `json:"type"`
	Banner     *Banner    `json:"banner,omitempty"`
	FAQ        []FAQItem  `json:"faq,omitempty"`
	Categories []Category `json:"categories,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NormalizeLayoutType canonicalizes a requested layout type, returning ""
// when it names no known block.
func NormalizeLayoutType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "banner":
		return LayoutBanner
	case "faq":
		return LayoutFAQ
	case "categories":
		return LayoutCategories
	default:
		return ""
	}
}
