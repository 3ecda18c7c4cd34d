package entity

import (
	"time"
)

// SiteSettings is a singleton document holding the marketing site's contact
// details and social links.
type SiteSettings struct {
	SiteName     string            `json:"site_name"`
	Tagline      string            `json:"tagline"`
	ContactEmail string            `json:"contact_email"`
	ContactPhone string            `json:"contact_phone"`
	Address      string            `json:"address"`
	SocialLinks  map[string]string `json:"social_links,omitempty"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
