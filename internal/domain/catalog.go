package domain

import "time"

type Category struct {
	ID         string    `json:"id"`
	PizzeriaID string    `json:"-"`
	Name       string    `json:"name"`
	SortOrder  int       `json:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Product struct {
	ID             string         `json:"id"`
	PizzeriaID     string         `json:"-"`
	CategoryID     string         `json:"categoryId"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	ImageURL       string         `json:"imageUrl,omitempty"`
	Available      bool           `json:"available"`
	AllowsHalfHalf bool           `json:"allowsHalfHalf"`
	Prices         []ProductPrice `json:"prices,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// ProductPrice is the authoritative price of a product at one size. One row
// per (product, size); every cart line must resolve to exactly one of these
// before an order can be created.
type ProductPrice struct {
	ProductID  string `json:"productId"`
	SizeName   string `json:"sizeName"`
	PriceCents int64  `json:"priceCents"`
}

// DeliveryZone is a flat order-level delivery fee for a neighborhood.
// Inactive zones stay selectable in the admin UI but are rejected at checkout.
type DeliveryZone struct {
	ID               string    `json:"id"`
	PizzeriaID       string    `json:"-"`
	NeighborhoodName string    `json:"neighborhoodName"`
	PriceCents       int64     `json:"priceCents"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"createdAt"`
}

// OperatingHours is one open interval on one weekday. Closing past midnight
// is expressed with CloseTime < OpenTime and spills into the next day.
type OperatingHours struct {
	ID         string `json:"id"`
	PizzeriaID string `json:"-"`
	Weekday    int    `json:"weekday"` // 0 = Sunday, matching time.Weekday
	OpenTime   string `json:"openTime"`
	CloseTime  string `json:"closeTime"`
	Closed     bool   `json:"closed"`
}

// OpenAt reports whether any of the given intervals covers t.
func OpenAt(hours []OperatingHours, t time.Time) bool {
	minutes := t.Hour()*60 + t.Minute()
	weekday := int(t.Weekday())
	prevDay := (weekday + 6) % 7

	for _, h := range hours {
		if h.Closed {
			continue
		}
		open, okOpen := parseClock(h.OpenTime)
		closeAt, okClose := parseClock(h.CloseTime)
		if !okOpen || !okClose {
			continue
		}
		switch {
		case open <= closeAt:
			if h.Weekday == weekday && minutes >= open && minutes < closeAt {
				return true
			}
		default:
			// Interval crosses midnight.
			if h.Weekday == weekday && minutes >= open {
				return true
			}
			if h.Weekday == prevDay && minutes < closeAt {
				return true
			}
		}
	}
	return false
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, bool) {
	if len(s) < 5 || s[2] != ':' {
		return 0, false
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' ||
		s[3] < '0' || s[3] > '9' || s[4] < '0' || s[4] > '9' {
		return 0, false
	}
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
