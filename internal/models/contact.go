package models

import "time"

// Contact represents an inbound contact-form message. Contacts are
// create-only: there is no update or delete operation anywhere in the API.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
