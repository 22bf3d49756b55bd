package handler

import (
	"reflect"
	"testing"
	"time"
)

func validReq() eventReq {
	return eventReq{
		ClientName:         "Jean Mballa",
		ClientEmail:        "jean@example.com",
		ClientPhone:        "+237698000000",
		DateStart:          time.Date(2025, time.July, 1, 9, 0, 0, 0, time.UTC),
		DateEnd:            time.Date(2025, time.July, 1, 18, 0, 0, 0, time.UTC),
		LocationID:         1,
		Services:           []string{"Sonorisation", "Éclairage"},
		PaymentMethod:      "Virement",
		ConditionsAccepted: true,
	}
}

func TestEventReqValidate_OK(t *testing.T) {
	req := validReq()
	if err := req.validate(true); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestEventReqValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*eventReq)
	}{
		{"missing clientName", func(r *eventReq) { r.ClientName = "  " }},
		{"missing clientEmail", func(r *eventReq) { r.ClientEmail = "" }},
		{"missing clientPhone", func(r *eventReq) { r.ClientPhone = "" }},
		{"missing locationId", func(r *eventReq) { r.LocationID = 0 }},
		{"missing paymentMethod", func(r *eventReq) { r.PaymentMethod = "" }},
		{"missing dates", func(r *eventReq) { r.DateStart = time.Time{} }},
		{"end before start", func(r *eventReq) { r.DateEnd = r.DateStart.Add(-time.Hour) }},
		{"empty service entry", func(r *eventReq) { r.Services = []string{"Sonorisation", " "} }},
		{"conditions not accepted", func(r *eventReq) { r.ConditionsAccepted = false }},
	}
	for _, tc := range cases {
		req := validReq()
		tc.mutate(&req)
		if err := req.validate(true); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestEventReqValidate_UpdateIgnoresConditions(t *testing.T) {
	req := validReq()
	req.ConditionsAccepted = false
	if err := req.validate(false); err != nil {
		t.Fatalf("full update must not require the conditions flag, got %v", err)
	}
}

func TestEventReqValidate_TrimsServices(t *testing.T) {
	req := validReq()
	req.Services = []string{" Sonorisation ", "Éclairage"}
	if err := req.validate(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Sonorisation", "Éclairage"}
	if !reflect.DeepEqual(req.Services, want) {
		t.Fatalf("expected trimmed services %v, got %v", want, req.Services)
	}
}

func TestEventReqValidate_NoServicesIsAllowed(t *testing.T) {
	req := validReq()
	req.Services = nil
	if err := req.validate(true); err != nil {
		t.Fatalf("a request without services must be accepted, got %v", err)
	}
}
