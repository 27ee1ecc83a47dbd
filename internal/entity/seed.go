package entity

// BuiltinUnits returns the default unit catalog installed by db-init.
// Character-counted languages get their own page/character weights; the
// language-less rows act as fallbacks for everything else.
func BuiltinUnits() []Unit {
	lang := func(code string) *string { return &code }
	return []Unit{
		{Name: "page", ActivityID: ActivityReading, Modifier: 1},
		{Name: "page", ActivityID: ActivityReading, LanguageCode: lang("jpn"), Modifier: 0.5},
		{Name: "page", ActivityID: ActivityReading, LanguageCode: lang("cmn"), Modifier: 0.5},
		{Name: "character", ActivityID: ActivityReading, LanguageCode: lang("jpn"), Modifier: 0.0025},
		{Name: "character", ActivityID: ActivityReading, LanguageCode: lang("cmn"), Modifier: 0.0025},
		{Name: "character", ActivityID: ActivityReading, LanguageCode: lang("kor"), Modifier: 0.002},
		{Name: "sentence", ActivityID: ActivityReading, Modifier: 0.05},

		{Name: "episode", ActivityID: ActivityListening, Modifier: 10},
		{Name: "movie", ActivityID: ActivityListening, Modifier: 45},
		{Name: "audiobook chapter", ActivityID: ActivityListening, Modifier: 15},

		{Name: "page", ActivityID: ActivityWriting, Modifier: 5},
		{Name: "sentence", ActivityID: ActivityWriting, Modifier: 0.25},

		{Name: "flashcard", ActivityID: ActivityStudy, Modifier: 0.1},
		{Name: "lesson", ActivityID: ActivityStudy, Modifier: 5},
	}
}

// BuiltinTags returns the default tag catalog installed by db-init.
func BuiltinTags() []Tag {
	return []Tag{
		{Name: "manga", ActivityID: ActivityReading},
		{Name: "novel", ActivityID: ActivityReading},
		{Name: "news", ActivityID: ActivityReading},
		{Name: "visual novel", ActivityID: ActivityReading},
		{Name: "anime", ActivityID: ActivityListening},
		{Name: "podcast", ActivityID: ActivityListening},
		{Name: "drama", ActivityID: ActivityListening},
		{Name: "audiobook", ActivityID: ActivityListening},
		{Name: "journal", ActivityID: ActivityWriting},
		{Name: "essay", ActivityID: ActivityWriting},
		{Name: "conversation", ActivityID: ActivitySpeaking},
		{Name: "shadowing", ActivityID: ActivitySpeaking},
		{Name: "anki", ActivityID: ActivityStudy},
		{Name: "textbook", ActivityID: ActivityStudy},
		{Name: "grammar", ActivityID: ActivityStudy},
	}
}
