package model

import "time"

// ContactMessage stores a public contact-form submission. The actual email
// notification is handled by a downstream consumer; the row is the durable
// record the admin panel reads.
type ContactMessage struct {
	ID        uint64    `json:"id"`         // contact_messages.id
	Name      string    `json:"name"`       // contact_messages.name
	Email     string    `json:"email"`      // contact_messages.email
	Phone     *string   `json:"phone"`      // contact_messages.phone (nullable)
	Subject   string    `json:"subject"`    // contact_messages.subject
	Message   string    `json:"message"`    // contact_messages.message
	Status    string    `json:"status"`     // contact_messages.status ("nouveau" on insert)
	CreatedAt time.Time `json:"created_at"` // contact_messages.created_at
}
