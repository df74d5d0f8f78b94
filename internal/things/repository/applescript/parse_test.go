package applescript

import (
	"reflect"
	"testing"
)

func TestParseTodos(t *testing.T) {
	t.Run("empty output yields empty slice", func(t *testing.T) {
		todos := parseTodos("")
		if todos == nil {
			t.Fatal("expected non-nil slice")
		}
		if len(todos) != 0 {
			t.Fatalf("expected 0 todos, got %d", len(todos))
		}
	})

	t.Run("full record", func(t *testing.T) {
		out := "ABC123|||Buy milk|||some notes|||open|||errand, home|||date Monday|||date Tuesday||||||Groceries|||Home###"
		todos := parseTodos(out)
		if len(todos) != 1 {
			t.Fatalf("expected 1 todo, got %d", len(todos))
		}
		td := todos[0]
		if td.ID != "ABC123" || td.Name != "Buy milk" {
			t.Fatalf("unexpected identity: %+v", td)
		}
		if td.Notes == nil || *td.Notes != "some notes" {
			t.Fatalf("unexpected notes: %v", td.Notes)
		}
		if !reflect.DeepEqual(td.TagNames, []string{"errand", "home"}) {
			t.Fatalf("unexpected tags: %v", td.TagNames)
		}
		if td.CompletionDate != nil {
			t.Fatalf("expected nil completion date, got %v", *td.CompletionDate)
		}
		if td.ProjectName == nil || *td.ProjectName != "Groceries" {
			t.Fatalf("unexpected project: %v", td.ProjectName)
		}
		if td.AreaName == nil || *td.AreaName != "Home" {
			t.Fatalf("unexpected area: %v", td.AreaName)
		}
	})

	t.Run("short record is dropped", func(t *testing.T) {
		out := "id1|||only|||three###id2|||Full|||n|||open||||||||||||||||||###"
		todos := parseTodos(out)
		if len(todos) != 1 {
			t.Fatalf("expected 1 todo, got %d", len(todos))
		}
		if todos[0].ID != "id2" {
			t.Fatalf("expected surviving record id2, got %s", todos[0].ID)
		}
	})

	t.Run("missing value maps to nil", func(t *testing.T) {
		out := "id|||n|||missing value|||open|||||||||missing value|||||||||###"
		todos := parseTodos(out)
		if len(todos) != 1 {
			t.Fatalf("expected 1 todo, got %d", len(todos))
		}
		if todos[0].Notes != nil {
			t.Fatalf("expected nil notes, got %v", *todos[0].Notes)
		}
		if todos[0].ScheduledDate != nil {
			t.Fatalf("expected nil scheduled date, got %v", *todos[0].ScheduledDate)
		}
	})

	t.Run("record order is preserved", func(t *testing.T) {
		out := "a|||A||||||open||||||||||||||||||###b|||B||||||completed||||||||||||||||||###"
		todos := parseTodos(out)
		if len(todos) != 2 {
			t.Fatalf("expected 2 todos, got %d", len(todos))
		}
		if todos[0].ID != "a" || todos[1].ID != "b" {
			t.Fatalf("order not preserved: %s, %s", todos[0].ID, todos[1].ID)
		}
		if todos[1].Status != "completed" {
			t.Fatalf("unexpected status: %s", todos[1].Status)
		}
	})
}

func TestParseProjects(t *testing.T) {
	out := "p1|||Website|||redesign notes|||open|||work|||Business|||12###p2|||Garden||||||open||||||not-a-number###"
	projects := parseProjects(out)
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].TodoCount != 12 {
		t.Fatalf("expected todo count 12, got %d", projects[0].TodoCount)
	}
	if projects[0].AreaName == nil || *projects[0].AreaName != "Business" {
		t.Fatalf("unexpected area: %v", projects[0].AreaName)
	}
	if projects[1].TodoCount != 0 {
		t.Fatalf("unparseable count should read as 0, got %d", projects[1].TodoCount)
	}
	if projects[1].AreaName != nil {
		t.Fatalf("expected nil area, got %v", *projects[1].AreaName)
	}
}

func TestParseAreasAndTags(t *testing.T) {
	areas := parseAreas("a1|||Home|||family, chores###a2|||Work|||###")
	if len(areas) != 2 {
		t.Fatalf("expected 2 areas, got %d", len(areas))
	}
	if !reflect.DeepEqual(areas[0].TagNames, []string{"family", "chores"}) {
		t.Fatalf("unexpected tags: %v", areas[0].TagNames)
	}
	if len(areas[1].TagNames) != 0 {
		t.Fatalf("expected empty tags, got %v", areas[1].TagNames)
	}

	tags := parseTags("t1|||errand###t2|||home###")
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(tags))
	}
	if tags[1].Name != "home" {
		t.Fatalf("unexpected tag name: %s", tags[1].Name)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `plain`},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash`, `back\\slash`},
		{`both \ and "`, `both \\ and \"`},
	}
	for _, tt := range tests {
		if got := escape(tt.in); got != tt.want {
			t.Errorf("escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestListReference(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"inbox", `list id "TMInboxListSource"`},
		{"Today", `list id "TMTodayListSource"`},
		{"upcoming", `list id "TMCalendarListSource"`},
		{"anytime", `list id "TMNextListSource"`},
		{"someday", `list id "TMSomedayListSource"`},
		{"LOGBOOK", `list id "TMLogbookListSource"`},
		{`My "Custom" List`, `list "My \"Custom\" List"`},
	}
	for _, tt := range tests {
		if got := listReference(tt.name); got != tt.want {
			t.Errorf("listReference(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
