package applescript

import (
	"fmt"
	"strings"

	"github.com/kiki830621/che-things-mcp/internal/things"
)

// Wire format sentinels. Chosen to be extremely unlikely in user
// content; the format breaks if they ever appear in it, which is an
// accepted limitation of the flat transport out of the scripting
// engine, not something to silently harden.
const (
	recordSeparator = "###"
	fieldSeparator  = "|||"
	listSeparator   = ", "
)

// escape backslash-escapes backslash and double-quote characters. This
// is the only injection defense for user-supplied text and must be
// applied to every interpolated string value without exception.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// quote returns s escaped and wrapped in an AppleScript string literal.
func quote(s string) string {
	return `"` + escape(s) + `"`
}

// tell wraps statements in a Things3 tell block.
func tell(statements ...string) string {
	var sb strings.Builder
	sb.WriteString("tell application \"Things3\"\n")
	for _, stmt := range statements {
		if stmt == "" {
			continue
		}
		sb.WriteString("    ")
		sb.WriteString(stmt)
		sb.WriteString("\n")
	}
	sb.WriteString("end tell")
	return sb.String()
}

// whenStatement renders the schedule statement for a "when" value.
// Symbolic keywords map to relative-command forms; anything else is
// normalized to a date literal. Unparseable strings pass through as a
// raw literal and fail at the application, deliberately uncorrected.
func (r *implRepository) whenStatement(varName, when string) string {
	switch strings.ToLower(when) {
	case "today":
		return "schedule " + varName + " for (current date)"
	case "tomorrow":
		return "schedule " + varName + " for ((current date) + 1 * days)"
	case "evening":
		// Things has no evening distinction at the scripting layer.
		return "schedule " + varName + " for (current date)"
	case "anytime":
		// Moving clears any date schedule as a side effect.
		return "move " + varName + " to " + listReference("Anytime")
	case "someday":
		return "move " + varName + " to " + listReference("Someday")
	default:
		if d, err := r.dates.ParseDate(when); err == nil {
			return "schedule " + varName + " for " + r.dates.AppleScriptLiteral(d)
		}
		return "schedule " + varName + " for date " + quote(when)
	}
}

// dueDateStatement renders the due date assignment for target, always
// in the locale-independent year-month-day literal form when parseable.
func (r *implRepository) dueDateStatement(target, dateString string) string {
	if d, err := r.dates.ParseDate(dateString); err == nil {
		return "set due date of " + target + " to " + r.dates.AppleScriptLiteral(d)
	}
	return "set due date of " + target + " to date " + quote(dateString)
}

// todoProperties builds a creation property literal from provided
// fields only. Omitted optional fields are absent, never empty strings.
func todoProperties(input things.AddTodoInput) string {
	props := []string{"name:" + quote(input.Name)}
	if input.Notes != nil {
		props = append(props, "notes:"+quote(*input.Notes))
	}
	if len(input.Tags) > 0 {
		props = append(props, "tag names:"+quote(strings.Join(input.Tags, listSeparator)))
	}
	return "{" + strings.Join(props, ", ") + "}"
}

// projectProperties builds a creation property literal for a project.
func projectProperties(input things.AddProjectInput) string {
	props := []string{"name:" + quote(input.Name)}
	if input.Notes != nil {
		props = append(props, "notes:"+quote(*input.Notes))
	}
	if len(input.Tags) > 0 {
		props = append(props, "tag names:"+quote(strings.Join(input.Tags, listSeparator)))
	}
	return "{" + strings.Join(props, ", ") + "}"
}

// todoFetchScript builds the read script for every to-do in the given
// container expression (e.g. `to dos of list id "..."`).
//
// Properties are fetched one batch Apple Event per column instead of a
// per-item repeat loop: the loop costs one round trip per item per
// field, which dominates end-to-end latency on large lists (roughly
// 30x slower on a few hundred items). Project and area traverse a
// relation that errors for items lacking it, so those two columns fall
// back to a per-item loop only when the batch call fails or comes back
// short; the rebuilt per-item list appends exactly one element per
// item and is therefore authoritative on length.
func todoFetchScript(container string) string {
	return fmt.Sprintf(`tell application "Things3"
    set todoCount to count of %[1]s
    if todoCount = 0 then return ""

    set allIds to id of %[1]s
    set allNames to name of %[1]s
    set allNotes to notes of %[1]s
    set allStatuses to status of %[1]s
    set allTags to tag names of %[1]s
    set allDueDates to due date of %[1]s
    set allScheduledDates to activation date of %[1]s
    set allCompletionDates to completion date of %[1]s

    set allProjects to {}
    set allAreas to {}
    try
        set allProjects to name of project of %[1]s
    on error
        set todoItems to %[1]s
        repeat with t in todoItems
            set projStr to ""
            try
                set projStr to name of project of t
            end try
            set end of allProjects to projStr
        end repeat
    end try

    try
        set allAreas to name of area of %[1]s
    on error
        set todoItems to %[1]s
        repeat with t in todoItems
            set areaStr to ""
            try
                set areaStr to name of area of t
            end try
            set end of allAreas to areaStr
        end repeat
    end try

    if (count of allProjects) < todoCount then
        set todoItems to %[1]s
        set allProjects to {}
        repeat with t in todoItems
            set projStr to ""
            try
                set projStr to name of project of t
            end try
            set end of allProjects to projStr
        end repeat
    end if

    if (count of allAreas) < todoCount then
        set todoItems to %[1]s
        set allAreas to {}
        repeat with t in todoItems
            set areaStr to ""
            try
                set areaStr to name of area of t
            end try
            set end of allAreas to areaStr
        end repeat
    end if

    set output to ""
    repeat with i from 1 to todoCount
        set dueStr to ""
        if item i of allDueDates is not missing value then
            set dueStr to (item i of allDueDates) as string
        end if

        set schedStr to ""
        if item i of allScheduledDates is not missing value then
            set schedStr to (item i of allScheduledDates) as string
        end if

        set compStr to ""
        if item i of allCompletionDates is not missing value then
            set compStr to (item i of allCompletionDates) as string
        end if

        set projStr to ""
        if item i of allProjects is not missing value then
            set projStr to item i of allProjects as string
        end if

        set areaStr to ""
        if item i of allAreas is not missing value then
            set areaStr to item i of allAreas as string
        end if

        set output to output & (item i of allIds) & "|||" & (item i of allNames) & "|||" & (item i of allNotes) & "|||" & (item i of allStatuses) & "|||" & (item i of allTags) & "|||" & dueStr & "|||" & schedStr & "|||" & compStr & "|||" & projStr & "|||" & areaStr & "###"
    end repeat

    return output
end tell`, container)
}

// projectFetchScript builds the read script for projects in the given
// container expression (e.g. `projects` or `projects of area id "..."`).
func projectFetchScript(container string) string {
	return fmt.Sprintf(`tell application "Things3"
    set output to ""
    repeat with p in %s
        set projId to id of p
        set projName to name of p
        set projNotes to notes of p
        set projStatus to status of p
        set projTags to tag names of p

        set projArea to ""
        try
            set projArea to name of area of p
        end try

        set projTodoCount to count of to dos of p

        set output to output & projId & "|||" & projName & "|||" & projNotes & "|||" & projStatus & "|||" & projTags & "|||" & projArea & "|||" & projTodoCount & "###"
    end repeat
    return output
end tell`, container)
}
