package content

import (
	"encoding/json"
	"strings"
	"testing"
)

const validPlanJSON = `{
  "title": "Go in 1 Week",
  "weekly_plan": [
    {
      "week": 1,
      "daily_schedule": [
        {
          "day": "Monday",
          "topic": "Basics",
          "tasks": [
            {
              "description": "Read the tour of Go",
              "resources": [
                {"title": "A Tour of Go", "url": "https://go.dev/tour/"}
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func TestStripFences_RemovesMarkdownWrapping(t *testing.T) {
	wrapped := "```json\n{\"a\":1}\n```"
	got := StripFences(wrapped)
	if got != `{"a":1}` {
		t.Fatalf("unexpected strip result: %q", got)
	}
}

func TestStripFences_LeavesPlainJSONAlone(t *testing.T) {
	got := StripFences(`  {"a":1}  `)
	if got != `{"a":1}` {
		t.Fatalf("unexpected strip result: %q", got)
	}
}

func TestParsePlanDocument_AcceptsValidDocument(t *testing.T) {
	doc, raw, err := ParsePlanDocument("```json\n" + validPlanJSON + "\n```")
	if err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
	if doc.Title != "Go in 1 Week" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
	if len(doc.WeeklyPlan) != 1 || len(doc.WeeklyPlan[0].DailySchedule) != 1 {
		t.Fatalf("unexpected plan shape: %+v", doc)
	}
	if doc.WeeklyPlan[0].DailySchedule[0].Tasks[0].Resources[0].URL != "https://go.dev/tour/" {
		t.Fatalf("resource url lost in parse")
	}
	// The cleaned bytes are what gets stored; they must be the fence-stripped
	// original, byte for byte.
	if string(raw) != validPlanJSON {
		t.Fatalf("cleaned bytes differ from stripped input")
	}
}

func TestParsePlanDocument_RoundTripsUnchanged(t *testing.T) {
	_, raw, err := ParsePlanDocument(validPlanJSON)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var a, b map[string]any
	if err := json.Unmarshal([]byte(validPlanJSON), &a); err != nil {
		t.Fatalf("unmarshal input: %v", err)
	}
	if err := json.Unmarshal(raw, &b); err != nil {
		t.Fatalf("unmarshal stored: %v", err)
	}
	aw, _ := json.Marshal(a["weekly_plan"])
	bw, _ := json.Marshal(b["weekly_plan"])
	if string(aw) != string(bw) {
		t.Fatalf("weekly_plan changed across parse:\n%s\n%s", aw, bw)
	}
}

func TestParsePlanDocument_RejectsNonJSON(t *testing.T) {
	if _, _, err := ParsePlanDocument("I could not generate a plan, sorry."); err == nil {
		t.Fatalf("expected error for non-JSON response")
	}
}

func TestParsePlanDocument_RejectsEmptyResponse(t *testing.T) {
	if _, _, err := ParsePlanDocument("```json\n```"); err == nil {
		t.Fatalf("expected error for empty response")
	}
}

func TestParsePlanDocument_RejectsMissingTitle(t *testing.T) {
	raw := strings.Replace(validPlanJSON, `"title": "Go in 1 Week",`, "", 1)
	if _, _, err := ParsePlanDocument(raw); err == nil {
		t.Fatalf("expected error for missing title")
	}
}

func TestParsePlanDocument_RejectsEmptyWeeklyPlan(t *testing.T) {
	if _, _, err := ParsePlanDocument(`{"title":"t","weekly_plan":[]}`); err == nil {
		t.Fatalf("expected error for empty weekly_plan")
	}
}

func TestParsePlanDocument_RejectsEmptyDailySchedule(t *testing.T) {
	raw := `{"title":"t","weekly_plan":[{"week":1,"daily_schedule":[]}]}`
	if _, _, err := ParsePlanDocument(raw); err == nil {
		t.Fatalf("expected error for empty daily_schedule")
	}
}

func TestParsePlanDocument_AllowsEmptyTasksAndResources(t *testing.T) {
	raw := `{"title":"t","weekly_plan":[{"week":1,"daily_schedule":[{"day":"Monday","topic":"x","tasks":[]}]}]}`
	if _, _, err := ParsePlanDocument(raw); err != nil {
		t.Fatalf("empty tasks should be allowed, got %v", err)
	}
}
