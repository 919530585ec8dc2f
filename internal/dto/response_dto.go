package dto

import "time"

type QuestionResponse struct {
	ID         uint      `json:"id"`
	Content    string    `json:"content"`
	Answer     string    `json:"answer"`
	Category   string    `json:"category,omitempty"`
	Tags       []string  `json:"tags"`
	Difficulty int       `json:"difficulty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ExamItemResponse struct {
	ID                 uint   `json:"id"`
	ExamID             uint   `json:"exam_id"`
	OriginalQuestionID *uint  `json:"original_question_id,omitempty"`
	Content            string `json:"content"`
	Answer             string `json:"answer"`
	Points             int    `json:"points"`
	Position           int    `json:"position"`
}

type ExamResponse struct {
	ID        uint               `json:"id"`
	Title     string             `json:"title"`
	Status    string             `json:"status"`
	Items     []ExamItemResponse `json:"items,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

type ExamSummaryResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ImportResultResponse reports how many candidates survived
// normalization and how many rows were actually inserted.
type ImportResultResponse struct {
	Parsed   int `json:"parsed"`
	Imported int `json:"imported"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
