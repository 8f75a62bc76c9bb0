package content

import (
	"fmt"
	"strings"
	"testing"
)

func quizJSON(questions int) string {
	qs := make([]string, 0, questions)
	for i := 0; i < questions; i++ {
		qs = append(qs, fmt.Sprintf(`{"question":"Q%d?","options":["a","b","c","d"],"correctAnswerIndex":%d}`, i+1, i%4))
	}
	return fmt.Sprintf(`{"title":"Go Quiz","questions":[%s]}`, strings.Join(qs, ","))
}

func TestParseQuizDocument_AcceptsValidQuiz(t *testing.T) {
	doc, raw, err := ParseQuizDocument("```json\n" + quizJSON(10) + "\n```")
	if err != nil {
		t.Fatalf("expected valid quiz, got %v", err)
	}
	if doc.Title != "Go Quiz" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
	if len(doc.Questions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(doc.Questions))
	}
	if string(raw) != quizJSON(10) {
		t.Fatalf("cleaned bytes differ from stripped input")
	}
}

func TestParseQuizDocument_DoesNotEnforceQuestionCount(t *testing.T) {
	// Ten questions is the prompt contract, not a validation rule.
	if _, _, err := ParseQuizDocument(quizJSON(3)); err != nil {
		t.Fatalf("short quiz should still parse, got %v", err)
	}
}

func TestParseQuizDocument_RejectsEmptyQuestions(t *testing.T) {
	if _, _, err := ParseQuizDocument(`{"title":"t","questions":[]}`); err == nil {
		t.Fatalf("expected error for empty questions")
	}
}

func TestParseQuizDocument_RejectsWrongOptionCount(t *testing.T) {
	raw := `{"title":"t","questions":[{"question":"Q?","options":["a","b","c"],"correctAnswerIndex":0}]}`
	if _, _, err := ParseQuizDocument(raw); err == nil {
		t.Fatalf("expected error for 3 options")
	}
}

func TestParseQuizDocument_RejectsOutOfRangeAnswerIndex(t *testing.T) {
	raw := `{"title":"t","questions":[{"question":"Q?","options":["a","b","c","d"],"correctAnswerIndex":4}]}`
	if _, _, err := ParseQuizDocument(raw); err == nil {
		t.Fatalf("expected error for answer index 4")
	}
}

func TestParseQuizDocument_RejectsNonJSON(t *testing.T) {
	if _, _, err := ParseQuizDocument("no quiz today"); err == nil {
		t.Fatalf("expected error for non-JSON response")
	}
}
