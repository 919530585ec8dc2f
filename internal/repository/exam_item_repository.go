package repository

import (
	"database/sql"

	"github.com/hortiexam/hortiexam/internal/model"
	"gorm.io/gorm"
)

type ExamItemRepository interface {
	Create(item *model.ExamItem) error
	FindByIDAndExam(id, examID uint) (*model.ExamItem, error)
	FindByExamID(examID uint) ([]model.ExamItem, error)
	// MaxPosition reports the highest position used within an exam.
	// The boolean is false when the exam has no items at all; callers
	// must not treat that as position -1.
	MaxPosition(examID uint) (int, bool, error)
	Update(item *model.ExamItem) error
	Delete(id uint) error
}

type examItemRepository struct {
	db *gorm.DB
}

func NewExamItemRepository(db *gorm.DB) ExamItemRepository {
	return &examItemRepository{db: db}
}

func (r *examItemRepository) Create(item *model.ExamItem) error {
	return r.db.Create(item).Error
}

func (r *examItemRepository) FindByIDAndExam(id, examID uint) (*model.ExamItem, error) {
	var item model.ExamItem
	if err := r.db.Where("id = ? AND exam_id = ?", id, examID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *examItemRepository) FindByExamID(examID uint) ([]model.ExamItem, error) {
	var items []model.ExamItem
	err := r.db.Where("exam_id = ?", examID).
		Order("position ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *examItemRepository) MaxPosition(examID uint) (int, bool, error) {
	var max sql.NullInt64
	row := r.db.Model(&model.ExamItem{}).
		Where("exam_id = ?", examID).
		Select("MAX(position)").
		Row()
	if err := row.Scan(&max); err != nil {
		return 0, false, err
	}
	if !max.Valid {
		return 0, false, nil
	}
	return int(max.Int64), true, nil
}

func (r *examItemRepository) Update(item *model.ExamItem) error {
	return r.db.Save(item).Error
}

func (r *examItemRepository) Delete(id uint) error {
	return r.db.Delete(&model.ExamItem{}, id).Error
}
