package filterexpr

import (
	"strings"
	"testing"
	"time"
)

var logSchema = Schema{
	"language":  {Kind: KindString, Ops: []Op{OpEQ}},
	"activity":  {Kind: KindNumber, Ops: []Op{OpEQ}},
	"keyword":   {Kind: KindString, Ops: []Op{OpEQ, OpSW}},
	"logged_at": {Kind: KindTimestamp, Ops: []Op{OpGE, OpLE}},
}

func TestParseConjunction(t *testing.T) {
	preds, err := Parse(`language == "jpn" && activity == 1 && keyword.startsWith("man")`, logSchema)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(preds) != 3 {
		t.Fatalf("expected three predicates, got %+v", preds)
	}
	if preds[0].Field != "language" || preds[0].Op != OpEQ || preds[0].Value != "jpn" {
		t.Errorf("unexpected language predicate: %+v", preds[0])
	}
	if preds[1].Field != "activity" || preds[1].Value != float64(1) {
		t.Errorf("unexpected activity predicate: %+v", preds[1])
	}
	if preds[2].Op != OpSW || preds[2].Value != "man" {
		t.Errorf("unexpected keyword predicate: %+v", preds[2])
	}
}

func TestParseTimestampRange(t *testing.T) {
	preds, err := Parse(`logged_at >= timestamp("2026-03-01T00:00:00Z")`, logSchema)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	got, ok := preds[0].Value.(time.Time)
	if !ok || !got.Equal(want) {
		t.Fatalf("expected timestamp %v, got %+v", want, preds[0].Value)
	}
}

func TestParseEmptyFilter(t *testing.T) {
	preds, err := Parse("  ", logSchema)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(preds) != 0 {
		t.Fatalf("expected no predicates, got %+v", preds)
	}
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse(`secret == "x"`, logSchema)
	if err == nil {
		t.Fatal("expected an error for an unknown field")
	}
}

func TestParseRejectsDisallowedOperator(t *testing.T) {
	_, err := Parse(`language.startsWith("jp")`, logSchema)
	if err == nil || !strings.Contains(err.Error(), "not allowed") {
		t.Fatalf("expected operator rejection, got %v", err)
	}
}

func TestParseRejectsOr(t *testing.T) {
	_, err := Parse(`language == "jpn" || language == "kor"`, logSchema)
	if err == nil || !strings.Contains(err.Error(), "only AND") {
		t.Fatalf("expected OR rejection, got %v", err)
	}
}

func TestParseOrderDefaults(t *testing.T) {
	fallback := Order{Key: "created_at", Desc: true}
	got, err := ParseOrder("", []string{"created_at", "score"}, fallback)
	if err != nil {
		t.Fatalf("ParseOrder returned error: %v", err)
	}
	if got != fallback {
		t.Fatalf("expected fallback order, got %+v", got)
	}
}

func TestParseOrderExplicit(t *testing.T) {
	got, err := ParseOrder("score desc", []string{"created_at", "score"}, Order{Key: "created_at"})
	if err != nil {
		t.Fatalf("ParseOrder returned error: %v", err)
	}
	if got.Key != "score" || !got.Desc {
		t.Fatalf("expected score desc, got %+v", got)
	}
}

func TestParseOrderRejectsUnknownKey(t *testing.T) {
	if _, err := ParseOrder("user_id", []string{"created_at"}, Order{Key: "created_at"}); err == nil {
		t.Fatal("expected rejection of non-whitelisted order key")
	}
}
