package domain

import "time"

// Pizzeria is the tenant. Every other entity hangs off a pizzeria id; public
// routes resolve the tenant by slug.
type Pizzeria struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	WhatsAppNumber string    `json:"whatsappNumber"`
	CreatedAt      time.Time `json:"createdAt"`
}
