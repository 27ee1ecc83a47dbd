package entity

// Activity is a kind of immersion practice. TimeModifier is set only for
// activities that can be scored by duration instead of a measured amount.
type Activity struct {
	ID           int32    `json:"id"`
	Name         string   `json:"name"`
	TimeModifier *float64 `json:"time_modifier,omitempty"`
}

// Activity identifiers. These are stable; contests and units reference them.
const (
	ActivityReading   int32 = 1
	ActivityListening int32 = 2
	ActivityWriting   int32 = 3
	ActivitySpeaking  int32 = 4
	ActivityStudy     int32 = 5
)

// Activities is the static activity catalog.
var Activities = []Activity{
	{ID: ActivityReading, Name: "Reading"},
	{ID: ActivityListening, Name: "Listening", TimeModifier: timeModifier(0.5)},
	{ID: ActivityWriting, Name: "Writing"},
	{ID: ActivitySpeaking, Name: "Speaking", TimeModifier: timeModifier(0.5)},
	{ID: ActivityStudy, Name: "Study", TimeModifier: timeModifier(0.25)},
}

func timeModifier(v float64) *float64 { return &v }

// LookupActivity resolves an activity id against the static catalog.
func LookupActivity(id int32) (Activity, bool) {
	for _, act := range Activities {
		if act.ID == id {
			return act, true
		}
	}
	return Activity{}, false
}

// Unit is a measurement a log amount is expressed in. LanguageCode nil marks
// a fallback unit usable by any language without its own variant; several
// units may share a Name across languages (a Japanese "page" weighs
// differently than a generic one).
type Unit struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ActivityID   int32   `json:"log_activity_id"`
	LanguageCode *string `json:"language_code,omitempty"`
	Modifier     float64 `json:"modifier"`
}

// Tag is a free-form categorical label scoped to one activity.
type Tag struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ActivityID int32  `json:"log_activity_id"`
}
