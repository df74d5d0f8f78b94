package applescript

import (
	"strconv"
	"strings"

	"github.com/kiki830621/che-things-mcp/internal/model"
)

const (
	todoFieldCount    = 10
	projectFieldCount = 7
	areaFieldCount    = 3
	tagFieldCount     = 2
)

// splitRecords splits raw script output into trimmed records, dropping
// the trailing empty segment left by the terminating separator. Empty
// output yields an empty slice, never nil.
func splitRecords(output string) []string {
	records := make([]string, 0)
	for _, rec := range strings.Split(output, recordSeparator) {
		rec = strings.TrimSpace(rec)
		if rec == "" {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// optionalField maps the wire encoding of an absent value to nil.
func optionalField(s string) *string {
	if s == "" || s == "missing value" {
		return nil
	}
	return &s
}

func parseStatusField(s string) model.Status {
	switch s {
	case "completed":
		return model.StatusCompleted
	case "canceled":
		return model.StatusCanceled
	default:
		return model.StatusOpen
	}
}

// parseTagField splits the comma-joined tag list the application emits.
// An item with no tags yields an empty slice so the JSON shape stays
// stable across items.
func parseTagField(s string) []string {
	tags := make([]string, 0)
	for _, t := range strings.Split(s, listSeparator) {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}

// parseTodos decodes batch to-do output. Records with too few fields
// are dropped rather than guessed at; a separator appearing inside
// user content corrupts only that record.
func parseTodos(output string) []model.Todo {
	records := splitRecords(output)
	todos := make([]model.Todo, 0, len(records))
	for _, rec := range records {
		fields := strings.Split(rec, fieldSeparator)
		if len(fields) < todoFieldCount {
			continue
		}
		todos = append(todos, model.Todo{
			ID:             fields[0],
			Name:           fields[1],
			Notes:          optionalField(fields[2]),
			Status:         parseStatusField(fields[3]),
			TagNames:       parseTagField(fields[4]),
			DueDate:        optionalField(fields[5]),
			ScheduledDate:  optionalField(fields[6]),
			CompletionDate: optionalField(fields[7]),
			ProjectName:    optionalField(fields[8]),
			AreaName:       optionalField(fields[9]),
		})
	}
	return todos
}

// parseProjects decodes batch project output.
func parseProjects(output string) []model.Project {
	records := splitRecords(output)
	projects := make([]model.Project, 0, len(records))
	for _, rec := range records {
		fields := strings.Split(rec, fieldSeparator)
		if len(fields) < projectFieldCount {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(fields[6]))
		if err != nil {
			count = 0
		}
		projects = append(projects, model.Project{
			ID:        fields[0],
			Name:      fields[1],
			Notes:     optionalField(fields[2]),
			Status:    parseStatusField(fields[3]),
			TagNames:  parseTagField(fields[4]),
			AreaName:  optionalField(fields[5]),
			TodoCount: count,
		})
	}
	return projects
}

func parseAreas(output string) []model.Area {
	records := splitRecords(output)
	areas := make([]model.Area, 0, len(records))
	for _, rec := range records {
		fields := strings.Split(rec, fieldSeparator)
		if len(fields) < areaFieldCount {
			continue
		}
		areas = append(areas, model.Area{
			ID:       fields[0],
			Name:     fields[1],
			TagNames: parseTagField(fields[2]),
		})
	}
	return areas
}

func parseTags(output string) []model.Tag {
	records := splitRecords(output)
	tags := make([]model.Tag, 0, len(records))
	for _, rec := range records {
		fields := strings.Split(rec, fieldSeparator)
		if len(fields) < tagFieldCount {
			continue
		}
		tags = append(tags, model.Tag{
			ID:   fields[0],
			Name: fields[1],
		})
	}
	return tags
}
