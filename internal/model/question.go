package model

import (
	"strings"
	"time"
)

// Question is the reusable pool entry. Questions are never deleted by
// lifecycle automation; they are deactivated instead. Content and
// Answer hold opaque marked-up text.
type Question struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Answer     string    `json:"answer" gorm:"type:text;not null"`
	Category   string    `json:"category,omitempty" gorm:"size:100;index"`
	Tags       string    `json:"-" gorm:"size:500"` // comma-joined, exposed as a list in DTOs
	Difficulty int       `json:"difficulty" gorm:"default:3"`
	Active     bool      `json:"active" gorm:"default:true;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TagList splits the stored comma-joined tags into trimmed labels.
func (q *Question) TagList() []string {
	if q.Tags == "" {
		return nil
	}
	parts := strings.Split(q.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags normalizes a tag list into the stored column format.
func JoinTags(tags []string) string {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, ",")
}
