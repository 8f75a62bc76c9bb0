package content

import (
	"encoding/json"
	"fmt"
)

// ParsePlanDocument strips fencing from a raw model response, decodes it and
// checks the Plan Document invariants: a title, a non-empty weekly_plan and a
// non-empty daily_schedule per week. Tasks and resources may be empty. The
// returned bytes are the cleaned JSON, stored verbatim as the plan content.
func ParsePlanDocument(raw string) (*PlanDocument, json.RawMessage, error) {
	cleaned := StripFences(raw)
	if cleaned == "" {
		return nil, nil, fmt.Errorf("empty model response")
	}

	var doc PlanDocument
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, nil, fmt.Errorf("model response is not valid JSON: %w", err)
	}
	if err := validatePlanDocument(&doc); err != nil {
		return nil, nil, err
	}
	return &doc, json.RawMessage(cleaned), nil
}

func validatePlanDocument(doc *PlanDocument) error {
	if doc.Title == "" {
		return fmt.Errorf("plan document missing title")
	}
	if len(doc.WeeklyPlan) == 0 {
		return fmt.Errorf("plan document missing weekly_plan")
	}
	for i, week := range doc.WeeklyPlan {
		if len(week.DailySchedule) == 0 {
			return fmt.Errorf("week %d has an empty daily_schedule", i+1)
		}
	}
	return nil
}
