package model

import "time"

// Exam statuses. Final is a pure metadata flag; no extra validation is
// enforced at this layer.
const (
	StatusDraft = "Draft"
	StatusFinal = "Final"
)

// DefaultExamTitle is used when an exam is created without a title.
const DefaultExamTitle = "Neue Prüfung"

type Exam struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	Title     string     `json:"title" gorm:"size:200;not null"`
	Status    string     `json:"status" gorm:"size:50;default:'Draft'"`
	Items     []ExamItem `json:"items,omitempty" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
