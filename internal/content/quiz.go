package content

import (
	"encoding/json"
	"fmt"
)

// ParseQuizDocument strips fencing, decodes and checks the Quiz Document
// shape: a title and at least one question, each with exactly four options
// and a correctAnswerIndex in [0,3]. The ten-question count is part of the
// generation prompt, not enforced here.
func ParseQuizDocument(raw string) (*QuizDocument, json.RawMessage, error) {
	cleaned := StripFences(raw)
	if cleaned == "" {
		return nil, nil, fmt.Errorf("empty model response")
	}

	var doc QuizDocument
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, nil, fmt.Errorf("model response is not valid JSON: %w", err)
	}
	if err := validateQuizDocument(&doc); err != nil {
		return nil, nil, err
	}
	return &doc, json.RawMessage(cleaned), nil
}

func validateQuizDocument(doc *QuizDocument) error {
	if doc.Title == "" {
		return fmt.Errorf("quiz document missing title")
	}
	if len(doc.Questions) == 0 {
		return fmt.Errorf("quiz document has no questions")
	}
	for i, q := range doc.Questions {
		if q.Question == "" {
			return fmt.Errorf("question %d is empty", i+1)
		}
		if len(q.Options) != 4 {
			return fmt.Errorf("question %d has %d options, want 4", i+1, len(q.Options))
		}
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex > 3 {
			return fmt.Errorf("question %d has correctAnswerIndex %d out of range", i+1, q.CorrectAnswerIndex)
		}
	}
	return nil
}
