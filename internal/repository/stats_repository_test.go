package repository

import (
	"database/sql"
	"reflect"
	"testing"
)

func blob(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestRankServices_CountsAndOrder(t *testing.T) {
	blobs := []sql.NullString{
		blob(`["Sonorisation","Éclairage"]`),
		blob(`["Sonorisation"]`),
		blob(`["Vidéoprojection","Sonorisation"]`),
	}
	got := rankServices(blobs, 5)
	want := []ServiceCount{
		{Name: "Sonorisation", Count: 3},
		{Name: "Éclairage", Count: 1},
		{Name: "Vidéoprojection", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRankServices_TiesKeepFirstEncounteredOrder(t *testing.T) {
	blobs := []sql.NullString{
		blob(`["B","A"]`),
		blob(`["C"]`),
	}
	got := rankServices(blobs, 5)
	want := []ServiceCount{{Name: "B", Count: 1}, {Name: "A", Count: 1}, {Name: "C", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected stable tie order %v, got %v", want, got)
	}
}

func TestRankServices_Truncation(t *testing.T) {
	blobs := []sql.NullString{blob(`["A","B","C","D"]`)}
	got := rankServices(blobs, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
}

func TestRankServices_SkipsMalformedRows(t *testing.T) {
	blobs := []sql.NullString{
		blob(`["Sonorisation"]`),
		blob(`[1,2]`),   // non-string array, decodes to nothing
		blob(`["open`),  // broken JSON, decodes to nothing
		{},              // NULL column
		blob("DJ"),      // legacy plain text, counts as one service
	}
	got := rankServices(blobs, 5)
	want := []ServiceCount{{Name: "Sonorisation", Count: 1}, {Name: "DJ", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRankServices_TotalNeverExceedsPairCount(t *testing.T) {
	blobs := []sql.NullString{
		blob(`["A","B"]`),
		blob(`["A"]`),
		blob(`["C","A","B"]`),
	}
	pairs := 6
	sum := 0
	for _, sc := range rankServices(blobs, 0) {
		sum += sc.Count
	}
	if sum > pairs {
		t.Fatalf("summed counts %d exceed event-service pairs %d", sum, pairs)
	}
}
