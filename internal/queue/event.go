// Package queue defines the notification payloads exchanged over the
// message broker. The mailer process consumes these; the API never sends
// email itself.
package queue

// BookingRequestedNotice is published when a public visitor submits an
// event request. It carries enough for the mailer to compose the admin
// notification and the client acknowledgement without querying the
// database.
type BookingRequestedNotice struct {
	EventID     uint64   `json:"event_id"`
	ClientName  string   `json:"client_name"`
	ClientEmail string   `json:"client_email"`
	DateStart   string   `json:"date_start"`
	DateEnd     string   `json:"date_end"`
	LocationID  uint64   `json:"location_id"`
	Services    []string `json:"services"`
	RequestedAt string   `json:"requested_at"`
}

// ContactReceivedNotice is published when a contact-form message is stored.
type ContactReceivedNotice struct {
	MessageID  uint64 `json:"message_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	ReceivedAt string `json:"received_at"`
}
