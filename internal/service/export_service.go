package service

import (
	"errors"
	"io"

	"github.com/hortiexam/hortiexam/internal/apperr"
	"github.com/hortiexam/hortiexam/internal/document"
	"github.com/hortiexam/hortiexam/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExportService renders a full exam into a downloadable document.
// Snapshot fields are sanitized by the encoder on the way out; the
// stored content keeps its markup.
type ExportService interface {
	ExportExam(id uint, w io.Writer) (filename string, err error)
}

type exportService struct {
	examRepo repository.ExamRepository
	itemRepo repository.ExamItemRepository
	encoder  document.Encoder
}

func NewExportService(examRepo repository.ExamRepository, itemRepo repository.ExamItemRepository, encoder document.Encoder) ExportService {
	return &exportService{examRepo: examRepo, itemRepo: itemRepo, encoder: encoder}
}

func (s *exportService) ExportExam(id uint, w io.Writer) (string, error) {
	exam, err := s.examRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFoundf("exam %d", id)
		}
		return "", apperr.Storagef("loading exam %d: %v", id, err)
	}
	items, err := s.itemRepo.FindByExamID(id)
	if err != nil {
		return "", apperr.Storagef("listing items of exam %d: %v", id, err)
	}

	if err := s.encoder.Encode(exam, items, w); err != nil {
		log.Error().Err(err).Uint("examID", id).Msg("Failed to encode exam document")
		return "", err
	}
	return document.ExportFilename(exam), nil
}
