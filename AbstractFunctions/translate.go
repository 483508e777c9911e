package AbstractFunctions

import "strings"

// The backend stores priority and status labels in French. The view shows
// English.
var labelTranslations = map[string]string{
	"haute":       "High",
	"moyenne":     "Medium",
	"basse":       "Low",
	"à faire":     "To Do",
	"en cours":    "In progress",
	"non démarré": "Not started",
	"complet":     "Finished",
}

// TranslateLabel maps a backend label to its display form. Unknown labels
// pass through unchanged.
func TranslateLabel(input string) string {
	if out, ok := labelTranslations[strings.ToLower(strings.TrimSpace(input))]; ok {
		return out
	}
	return input
}
