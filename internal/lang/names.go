package lang

import "strings"

var languageNames = map[string]string{
	"en": "English", "es": "Spanish", "fr": "French", "de": "German",
	"it": "Italian", "pt": "Portuguese", "ru": "Russian", "zh": "Chinese",
	"ja": "Japanese", "ko": "Korean", "ar": "Arabic", "nl": "Dutch",
	"pl": "Polish", "sv": "Swedish", "tr": "Turkish", "hi": "Hindi",
	"th": "Thai", "vi": "Vietnamese", "id": "Indonesian", "cs": "Czech",
	"da": "Danish", "fi": "Finnish", "el": "Greek", "he": "Hebrew",
	"hu": "Hungarian", "no": "Norwegian", "ro": "Romanian", "sk": "Slovak",
	"uk": "Ukrainian", "bg": "Bulgarian", "hr": "Croatian", "ca": "Catalan",
	"et": "Estonian", "lv": "Latvian", "lt": "Lithuanian", "sl": "Slovenian",
}

// Name returns the English display name for an ISO language code, or the
// upper-cased code when unknown.
func Name(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}
