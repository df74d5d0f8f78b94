package applescript

import "strings"

// builtinListIDs maps logical built-in list names to Things' internal
// source identifiers. Addressing lists by id instead of display name is
// what keeps commands working under non-English application locales.
// IDs verified via: osascript -e 'tell application "Things3" to get id of every list'
var builtinListIDs = map[string]string{
	"inbox":    "TMInboxListSource",
	"today":    "TMTodayListSource",
	"upcoming": "TMCalendarListSource", // NOT TMUpcomingListSource
	"anytime":  "TMNextListSource",     // NOT TMAnytimeListSource
	"someday":  "TMSomedayListSource",
	"logbook":  "TMLogbookListSource",
}

// listIDForBuiltIn resolves a built-in list name case-insensitively.
func listIDForBuiltIn(name string) (string, bool) {
	id, ok := builtinListIDs[strings.ToLower(name)]
	return id, ok
}

// listReference returns the AppleScript reference for a list. Built-in
// lists are addressed by internal id, user-defined lists by escaped
// name. Typos of built-in names fall through as name references and
// fail at the application, not here.
func listReference(name string) string {
	if id, ok := listIDForBuiltIn(name); ok {
		return `list id "` + id + `"`
	}
	return `list "` + escape(name) + `"`
}
