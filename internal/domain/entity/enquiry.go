package entity

import (
	"time"
)

// Enquiry source tags, one per public form.
const (
	SourcePropertyEnquiry    = "property-enquiry"
	SourceHomeLoans          = "home-loans"
	SourceInteriorDesign     = "interior-design"
	SourcePropertyPromotions = "property-promotions"
)

// Enquiry workflow statuses, advanced only by admins and only forward.
const (
	EnquiryStatusNew       = "new"
	EnquiryStatusContacted = "contacted"
	EnquiryStatusClosed    = "closed"
)

type Enquiry struct {
	ID        string `json:"id"`
	ListingID string `json:"listing_id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	AltPhone  string `json:"alt_phone,omitempty"`
	Message   string `json:"message"`
	Source    string `json:"source"`
	Status    string `json:"status"`

	// Extra carries the per-form free-text payload (preferred bank, budget,
	// location and so on), stored verbatim.
	Extra map[string]string `json:"extra,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
