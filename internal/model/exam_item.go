package model

import "time"

// ExamItem links an Exam to a Question by value, not by reference.
// SnapshotContent and SnapshotAnswer are copied from the source
// Question exactly once, when the item is created. Later edits,
// deactivation or deletion of that Question must never change them.
// OriginalQuestionID is kept for traceability only and may point to a
// since-modified or deleted Question.
type ExamItem struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	ExamID             uint      `json:"exam_id" gorm:"not null;index"`
	OriginalQuestionID *uint     `json:"original_question_id,omitempty" gorm:"index"`
	SnapshotContent    string    `json:"content" gorm:"type:text;not null"`
	SnapshotAnswer     string    `json:"answer" gorm:"type:text;not null"`
	Points             int       `json:"points" gorm:"default:1"`
	Position           int       `json:"position" gorm:"default:0"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
