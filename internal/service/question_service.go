package service

import (
	"errors"
	"strings"

	"github.com/hortiexam/hortiexam/internal/apperr"
	"github.com/hortiexam/hortiexam/internal/dto"
	"github.com/hortiexam/hortiexam/internal/model"
	"github.com/hortiexam/hortiexam/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetQuestion(id uint) (*dto.QuestionResponse, error)
	ListQuestions(filter repository.QuestionFilter) ([]dto.QuestionResponse, error)
	UpdateQuestion(id uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	DeactivateQuestion(id uint) (*dto.QuestionResponse, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	content := strings.TrimSpace(req.Content)
	answer := strings.TrimSpace(req.Answer)
	if content == "" || answer == "" {
		return nil, apperr.Validationf("content and answer must be non-empty")
	}

	difficulty := req.Difficulty
	if difficulty == 0 {
		difficulty = 3
	}
	question := model.Question{
		Content:    content,
		Answer:     answer,
		Category:   req.Category,
		Tags:       model.JoinTags(req.Tags),
		Difficulty: difficulty,
		Active:     true,
	}
	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, apperr.Storagef("creating question: %v", err)
	}
	return questionToResponse(&question), nil
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("question %d", id)
		}
		return nil, apperr.Storagef("loading question %d: %v", id, err)
	}
	return questionToResponse(question), nil
}

func (s *questionService) ListQuestions(filter repository.QuestionFilter) ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindFiltered(filter)
	if err != nil {
		return nil, apperr.Storagef("listing questions: %v", err)
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		resp = append(resp, *questionToResponse(&questions[i]))
	}
	return resp, nil
}

// UpdateQuestion edits the pool entry only. Exam items snapshotted
// from this question are not touched.
func (s *questionService) UpdateQuestion(id uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("question %d", id)
		}
		return nil, apperr.Storagef("loading question %d: %v", id, err)
	}

	content := strings.TrimSpace(req.Content)
	answer := strings.TrimSpace(req.Answer)
	if content == "" || answer == "" {
		return nil, apperr.Validationf("content and answer must be non-empty")
	}

	question.Content = content
	question.Answer = answer
	question.Category = req.Category
	question.Tags = model.JoinTags(req.Tags)
	if req.Difficulty != 0 {
		question.Difficulty = req.Difficulty
	}
	if req.Active != nil {
		question.Active = *req.Active
	}

	if err := s.repo.Update(question); err != nil {
		return nil, apperr.Storagef("updating question %d: %v", id, err)
	}
	return questionToResponse(question), nil
}

// DeactivateQuestion hides the question from selection listings
// without deleting it.
func (s *questionService) DeactivateQuestion(id uint) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("question %d", id)
		}
		return nil, apperr.Storagef("loading question %d: %v", id, err)
	}
	question.Active = false
	if err := s.repo.Update(question); err != nil {
		return nil, apperr.Storagef("deactivating question %d: %v", id, err)
	}
	return questionToResponse(question), nil
}

func (s *questionService) DeleteQuestion(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("question %d", id)
		}
		return apperr.Storagef("loading question %d: %v", id, err)
	}
	if err := s.repo.Delete(id); err != nil {
		return apperr.Storagef("deleting question %d: %v", id, err)
	}
	return nil
}

func questionToResponse(q *model.Question) *dto.QuestionResponse {
	return &dto.QuestionResponse{
		ID:         q.ID,
		Content:    q.Content,
		Answer:     q.Answer,
		Category:   q.Category,
		Tags:       q.TagList(),
		Difficulty: q.Difficulty,
		Active:     q.Active,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}
