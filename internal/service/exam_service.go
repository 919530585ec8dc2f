package service

import (
	"errors"
	"strings"

	"github.com/hortiexam/hortiexam/internal/apperr"
	"github.com/hortiexam/hortiexam/internal/dto"
	"github.com/hortiexam/hortiexam/internal/model"
	"github.com/hortiexam/hortiexam/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ExamService interface {
	CreateExam(req dto.CreateExamRequest) (*dto.ExamResponse, error)
	GetExamWithItems(id uint) (*dto.ExamResponse, error)
	GetAllExams() ([]dto.ExamSummaryResponse, error)
	FinalizeExam(id uint) (*dto.ExamResponse, error)
	DeleteExam(id uint) error
}

type examService struct {
	examRepo repository.ExamRepository
}

func NewExamService(examRepo repository.ExamRepository) ExamService {
	return &examService{examRepo: examRepo}
}

func (s *examService) CreateExam(req dto.CreateExamRequest) (*dto.ExamResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = model.DefaultExamTitle
	}
	exam := model.Exam{
		Title:  title,
		Status: model.StatusDraft,
	}
	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Msg("Failed to create exam")
		return nil, apperr.Storagef("creating exam: %v", err)
	}
	return examToResponse(&exam), nil
}

func (s *examService) GetExamWithItems(id uint) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByIDWithItems(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("exam %d", id)
		}
		return nil, apperr.Storagef("loading exam %d: %v", id, err)
	}
	return examToResponse(exam), nil
}

func (s *examService) GetAllExams() ([]dto.ExamSummaryResponse, error) {
	exams, err := s.examRepo.FindAll()
	if err != nil {
		return nil, apperr.Storagef("listing exams: %v", err)
	}
	var resp []dto.ExamSummaryResponse
	if err := copier.Copy(&resp, &exams); err != nil {
		log.Error().Err(err).Msg("Failed to copy exams to summary response")
		return nil, err
	}
	return resp, nil
}

// FinalizeExam flips Draft to Final. This is a pure metadata change;
// content-level checks are a caller policy, not enforced here.
func (s *examService) FinalizeExam(id uint) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("exam %d", id)
		}
		return nil, apperr.Storagef("loading exam %d: %v", id, err)
	}
	exam.Status = model.StatusFinal
	if err := s.examRepo.Update(exam); err != nil {
		return nil, apperr.Storagef("finalizing exam %d: %v", id, err)
	}
	return examToResponse(exam), nil
}

func (s *examService) DeleteExam(id uint) error {
	if _, err := s.examRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("exam %d", id)
		}
		return apperr.Storagef("loading exam %d: %v", id, err)
	}
	if err := s.examRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("examID", id).Msg("Failed to delete exam with items")
		return apperr.Storagef("deleting exam %d: %v", id, err)
	}
	return nil
}

func examToResponse(exam *model.Exam) *dto.ExamResponse {
	resp := dto.ExamResponse{
		ID:        exam.ID,
		Title:     exam.Title,
		Status:    exam.Status,
		CreatedAt: exam.CreatedAt,
	}
	for _, item := range exam.Items {
		resp.Items = append(resp.Items, itemToResponse(item))
	}
	return &resp
}
