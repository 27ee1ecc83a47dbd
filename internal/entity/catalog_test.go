package entity

import (
	"reflect"
	"testing"
)

func strptr(s string) *string { return &s }

func int32ptr(v int32) *int32 { return &v }

func TestFilterUnitsPrefersLanguageVariant(t *testing.T) {
	units := []Unit{
		{ID: "u1", Name: "page", ActivityID: ActivityReading, LanguageCode: strptr("jpn"), Modifier: 1},
		{ID: "u2", Name: "page", ActivityID: ActivityReading, Modifier: 0.2},
	}

	got := FilterUnits(units, int32ptr(ActivityReading), "jpn")
	if len(got) != 1 || got[0].ID != "u1" {
		t.Fatalf("expected language-specific unit u1, got %+v", got)
	}

	got = FilterUnits(units, int32ptr(ActivityReading), "kor")
	if len(got) != 1 || got[0].ID != "u2" {
		t.Fatalf("expected fallback unit u2, got %+v", got)
	}
}

func TestFilterUnitsDropsGroupWithoutApplicableVariant(t *testing.T) {
	units := []Unit{
		{ID: "u1", Name: "page", ActivityID: ActivityReading, LanguageCode: strptr("jpn"), Modifier: 1},
	}

	got := FilterUnits(units, int32ptr(ActivityReading), "kor")
	if len(got) != 0 {
		t.Fatalf("expected no units for a lone foreign-language variant, got %+v", got)
	}
}

func TestFilterUnitsNoActivitySelected(t *testing.T) {
	units := []Unit{{ID: "u1", Name: "page", ActivityID: ActivityReading, Modifier: 1}}
	if got := FilterUnits(units, nil, "jpn"); len(got) != 0 {
		t.Fatalf("expected empty result without an activity, got %+v", got)
	}
}

func TestFilterUnitsGroupOrderAndActivityScope(t *testing.T) {
	units := []Unit{
		{ID: "u1", Name: "page", ActivityID: ActivityReading, Modifier: 1},
		{ID: "u2", Name: "minute", ActivityID: ActivityListening, Modifier: 0.5},
		{ID: "u3", Name: "character", ActivityID: ActivityReading, Modifier: 0.0025},
		{ID: "u4", Name: "page", ActivityID: ActivityReading, LanguageCode: strptr("kor"), Modifier: 1.2},
	}

	got := FilterUnits(units, int32ptr(ActivityReading), "kor")
	if len(got) != 2 {
		t.Fatalf("expected two unit groups, got %+v", got)
	}
	if got[0].ID != "u4" || got[1].ID != "u3" {
		t.Fatalf("expected [u4 u3] keeping first-seen group order, got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestFilterUnitsIsIdempotent(t *testing.T) {
	units := []Unit{
		{ID: "u1", Name: "page", ActivityID: ActivityReading, LanguageCode: strptr("jpn"), Modifier: 1},
		{ID: "u2", Name: "page", ActivityID: ActivityReading, Modifier: 0.2},
		{ID: "u3", Name: "character", ActivityID: ActivityReading, Modifier: 0.0025},
	}

	first := FilterUnits(units, int32ptr(ActivityReading), "jpn")
	second := FilterUnits(first, int32ptr(ActivityReading), "jpn")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("filtering is not idempotent: %+v vs %+v", first, second)
	}
}

func TestFilterTags(t *testing.T) {
	tags := []Tag{
		{ID: "t1", Name: "manga", ActivityID: ActivityReading},
		{ID: "t2", Name: "podcast", ActivityID: ActivityListening},
		{ID: "t3", Name: "novel", ActivityID: ActivityReading},
	}

	if got := FilterTags(tags, nil); len(got) != 0 {
		t.Fatalf("expected empty result without an activity, got %+v", got)
	}

	got := FilterTags(tags, int32ptr(ActivityReading))
	if len(got) != 2 || got[0].ID != "t1" || got[1].ID != "t3" {
		t.Fatalf("expected [t1 t3] in catalog order, got %+v", got)
	}
}

func TestFilterActivitiesPersonalModeUnfiltered(t *testing.T) {
	got := FilterActivities(Activities, nil, TrackingPersonal)
	if !reflect.DeepEqual(got, Activities) {
		t.Fatalf("personal mode must offer every activity, got %+v", got)
	}
}

func TestFilterActivitiesUnionOfResolvedContests(t *testing.T) {
	reading, _ := LookupActivity(ActivityReading)
	listening, _ := LookupActivity(ActivityListening)
	registrations := []ContestRegistration{
		{ID: "r1", Contest: &Contest{AllowedActivities: []Activity{reading}}},
		{ID: "r2"}, // unresolved contest contributes nothing
		{ID: "r3", Contest: &Contest{AllowedActivities: []Activity{listening}}},
	}

	got := FilterActivities(Activities, registrations, TrackingAutomatic)
	if len(got) != 2 || got[0].ID != ActivityReading || got[1].ID != ActivityListening {
		t.Fatalf("expected reading and listening in catalog order, got %+v", got)
	}
}
