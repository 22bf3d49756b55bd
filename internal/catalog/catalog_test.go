package catalog

import (
	"database/sql"
	"reflect"
	"testing"
)

func valid(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cases := [][]string{
		{},
		{"Sonorisation"},
		{"Sonorisation", "Éclairage", "Traduction simultanée"},
		{"with \"quotes\"", "with, comma"},
	}
	for _, services := range cases {
		got := Decode(valid(Encode(services)))
		if !reflect.DeepEqual(got, services) {
			t.Fatalf("round trip of %v returned %v", services, got)
		}
	}
}

func TestEncode_Empty(t *testing.T) {
	if got := Encode(nil); got != "[]" {
		t.Fatalf("expected %q, got %q", "[]", got)
	}
	if got := Encode([]string{}); got != "[]" {
		t.Fatalf("expected %q, got %q", "[]", got)
	}
}

func TestDecode_Null(t *testing.T) {
	got := Decode(sql.NullString{})
	if !reflect.DeepEqual(got, []string{}) {
		t.Fatalf("expected empty list for NULL, got %v", got)
	}
}

func TestDecode_EmptyString(t *testing.T) {
	got := Decode(valid("   "))
	if !reflect.DeepEqual(got, []string{}) {
		t.Fatalf("expected empty list for blank text, got %v", got)
	}
}

func TestDecode_LegacyPlainText(t *testing.T) {
	got := Decode(valid("not json"))
	if !reflect.DeepEqual(got, []string{"not json"}) {
		t.Fatalf("expected wrapped legacy value, got %v", got)
	}
}

func TestDecode_NonStringArray(t *testing.T) {
	got := Decode(valid("[1,2]"))
	if !reflect.DeepEqual(got, []string{}) {
		t.Fatalf("expected empty list for non-string array, got %v", got)
	}
}

func TestDecode_MalformedArray(t *testing.T) {
	got := Decode(valid(`["open`))
	if !reflect.DeepEqual(got, []string{}) {
		t.Fatalf("expected empty list for malformed array, got %v", got)
	}
}

func TestDecode_JSONNullArrayText(t *testing.T) {
	// "null" does not start with '[' so it is treated as legacy plain text.
	got := Decode(valid("null"))
	if !reflect.DeepEqual(got, []string{"null"}) {
		t.Fatalf("expected wrapped text, got %v", got)
	}
}
