package content

// PlanDocument is the canonical shape of a generated study plan. The raw
// provider JSON is stored verbatim; this type exists for the one-time shape
// check at the generation boundary.
type PlanDocument struct {
	Title      string       `json:"title"`
	WeeklyPlan []WeeklyPlan `json:"weekly_plan"`
}

type WeeklyPlan struct {
	Week          int        `json:"week"`
	DailySchedule []DayEntry `json:"daily_schedule"`
}

type DayEntry struct {
	Day   string     `json:"day"`
	Topic string     `json:"topic"`
	Tasks []PlanTask `json:"tasks"`
}

type PlanTask struct {
	Description string         `json:"description"`
	Resources   []PlanResource `json:"resources"`
}

type PlanResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// QuizDocument is the shape of a generated assessment. It is returned to the
// caller for client-side grading and never persisted.
type QuizDocument struct {
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}
