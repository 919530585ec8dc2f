package dto

// CreateQuestionRequest adds a question to the pool by manual entry.
type CreateQuestionRequest struct {
	Content    string   `json:"content" binding:"required"`
	Answer     string   `json:"answer" binding:"required"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Difficulty int      `json:"difficulty" binding:"omitempty,min=1,max=5"`
}

// UpdateQuestionRequest edits a pool question. Edits never propagate
// into existing exam item snapshots.
type UpdateQuestionRequest struct {
	Content    string   `json:"content" binding:"required"`
	Answer     string   `json:"answer" binding:"required"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Difficulty int      `json:"difficulty" binding:"omitempty,min=1,max=5"`
	Active     *bool    `json:"active"`
}

// CreateExamRequest creates an empty draft exam. Title may be blank;
// a placeholder is substituted.
type CreateExamRequest struct {
	Title string `json:"title"`
}

// AddItemRequest places a pool question into an exam, snapshotting its
// content. Points defaults to 1 when omitted.
type AddItemRequest struct {
	QuestionID uint `json:"question_id" binding:"required"`
	Points     *int `json:"points"`
}

// ReorderRequest carries the desired item order. Ids not belonging to
// the exam are ignored; items missing from the list keep their
// positions.
type ReorderRequest struct {
	ItemIDs []uint `json:"item_ids"`
}

// ExtractRequest runs the configured text-extraction provider over raw
// document text and imports the validated candidates.
type ExtractRequest struct {
	Text     string `json:"text" binding:"required"`
	Category string `json:"category"`
}
