package model

import "time"

// Status is the approval state of a booking request. The stored labels are
// the French strings the admin panel and the public calendar display, so
// they are kept verbatim rather than translated into codes.
type Status string

const (
	StatusPending   Status = "En attente" // initial state of every event
	StatusConfirmed Status = "Confirmé"   // accepted by the admin
	StatusCancelled Status = "Annulé"     // rejected or withdrawn
)

// Valid reports whether s is one of the three known statuses. Status
// transitions are only accepted through the dedicated status endpoint and
// the handler rejects anything outside this closed set.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Event represents a booking request for a venue and a set of technical
// services over a date range.
//
// Fields:
//  ID                 – primary key identifier.
//  ClientName/Email/Phone – contact details of the requester.
//  CompanyName        – optional company, nil when not provided.
//  DateStart/DateEnd  – scheduled period of the event.
//  LocationID         – reference to the booked location.
//  Services           – requested service names, decoded from the stored blob.
//  PaymentMethod      – free-text payment choice from the public form.
//  Notes              – optional free text, nil when not provided.
//  ConditionsAccepted – acceptance flag recorded at creation.
//  Status             – current approval state.
//  LocationName       – display name of the location (parent - child), nil
//                       when the referenced location no longer exists.
type Event struct {
	ID                 uint64    `json:"id"`                  // events.id
	ClientName         string    `json:"client_name"`         // events.client_name
	ClientEmail        string    `json:"client_email"`        // events.client_email
	ClientPhone        string    `json:"client_phone"`        // events.client_phone
	CompanyName        *string   `json:"company_name"`        // events.company_name (nullable)
	DateStart          time.Time `json:"date_start"`          // events.date_start
	DateEnd            time.Time `json:"date_end"`            // events.date_end
	LocationID         uint64    `json:"location_id"`         // events.location_id
	Services           []string  `json:"services"`            // decoded events.services
	PaymentMethod      string    `json:"payment_method"`      // events.payment_method
	Notes              *string   `json:"notes"`               // events.notes (nullable)
	ConditionsAccepted bool      `json:"conditions_accepted"` // events.conditions_accepted
	Status             Status    `json:"status"`              // events.status
	LocationName       *string   `json:"location_name"`       // joined display name
}

// PublicEvent is the reduced projection served to the public calendar.
// It carries no contact details beyond the client name.
type PublicEvent struct {
	ID           uint64    `json:"id"`
	ClientName   string    `json:"client_name"`
	DateStart    time.Time `json:"date_start"`
	DateEnd      time.Time `json:"date_end"`
	Status       Status    `json:"status"`
	LocationName *string   `json:"location_name"`
}
