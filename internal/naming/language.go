package naming

import "strings"

// languageISO maps language names and 2-letter codes to ISO 639-2 codes,
// as expected by the subtitle stream metadata in the merged container.
var languageISO = map[string]string{
	"english":    "eng",
	"en":         "eng",
	"spanish":    "spa",
	"es":         "spa",
	"español":    "spa",
	"french":     "fre",
	"fr":         "fre",
	"français":   "fre",
	"italian":    "ita",
	"it":         "ita",
	"italiano":   "ita",
	"portuguese": "por",
	"pt":         "por",
	"português":  "por",
	"german":     "ger",
	"de":         "ger",
	"deutsch":    "ger",
	"japanese":   "jpn",
	"ja":         "jpn",
	"日本語":        "jpn",
	"korean":     "kor",
	"ko":         "kor",
	"한국어":        "kor",
	"chinese":    "chi",
	"zh":         "chi",
	"中文":         "chi",
	"russian":    "rus",
	"ru":         "rus",
	"dutch":      "nld",
	"nl":         "nld",
	"polish":     "pol",
	"pl":         "pol",
}

// LanguageToISO maps a free-text language token to its ISO 639-2 code.
// Unknown languages map to "und".
func LanguageToISO(lang string) string {
	if iso, ok := languageISO[strings.ToLower(lang)]; ok {
		return iso
	}
	return "und"
}
