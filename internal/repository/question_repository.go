package repository

import (
	"github.com/hortiexam/hortiexam/internal/model"
	"gorm.io/gorm"
)

// QuestionFilter narrows pool listings. Zero values mean "no filter";
// ActiveOnly defaults to true at the controller.
type QuestionFilter struct {
	Category   string
	Tag        string
	Difficulty *int
	ActiveOnly bool
}

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindFiltered(filter QuestionFilter) ([]model.Question, error)
	Update(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindFiltered(filter QuestionFilter) ([]model.Question, error) {
	query := r.db.Model(&model.Question{})
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Tag != "" {
		query = query.Where("tags LIKE ?", "%"+filter.Tag+"%")
	}
	if filter.Difficulty != nil {
		query = query.Where("difficulty = ?", *filter.Difficulty)
	}

	var questions []model.Question
	if err := query.Order("created_at desc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	// Items referencing this question keep their snapshots; only the
	// pool entry goes away.
	return r.db.Delete(&model.Question{}, id).Error
}
