package entity

import "strings"

// Language identifies a trackable language by its ISO-639-3 style code.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages available for immersion tracking. The catalog is static; contests
// reference entries from it via AllowedLanguages.
var Languages = []Language{
	{Code: "jpn", Name: "Japanese"},
	{Code: "kor", Name: "Korean"},
	{Code: "cmn", Name: "Mandarin Chinese"},
	{Code: "yue", Name: "Cantonese"},
	{Code: "eng", Name: "English"},
	{Code: "spa", Name: "Spanish"},
	{Code: "fra", Name: "French"},
	{Code: "deu", Name: "German"},
	{Code: "ita", Name: "Italian"},
	{Code: "por", Name: "Portuguese"},
	{Code: "rus", Name: "Russian"},
	{Code: "ara", Name: "Arabic"},
	{Code: "tha", Name: "Thai"},
	{Code: "vie", Name: "Vietnamese"},
	{Code: "epo", Name: "Esperanto"},
}

// LookupLanguage resolves a code against the static catalog.
func LookupLanguage(code string) (Language, bool) {
	normalized := NormalizeLanguageCode(code)
	for _, lang := range Languages {
		if lang.Code == normalized {
			return lang, true
		}
	}
	return Language{}, false
}

// ValidLanguageCode reports whether the code names a known language.
func ValidLanguageCode(code string) bool {
	_, ok := LookupLanguage(code)
	return ok
}

// NormalizeLanguageCode lowercases and trims a raw language code.
func NormalizeLanguageCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// HasLanguage reports whether code appears in the given language set.
func HasLanguage(languages []Language, code string) bool {
	for _, lang := range languages {
		if lang.Code == code {
			return true
		}
	}
	return false
}
