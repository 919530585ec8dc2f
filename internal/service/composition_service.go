package service

import (
	"errors"

	"github.com/hortiexam/hortiexam/internal/apperr"
	"github.com/hortiexam/hortiexam/internal/dto"
	"github.com/hortiexam/hortiexam/internal/model"
	"github.com/hortiexam/hortiexam/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CompositionService maintains the ordered set of exam items for one
// exam. Adding a question copies its content into the item; from that
// point on the item is causally disconnected from the pool question.
type CompositionService interface {
	AddQuestion(examID, questionID uint, points *int) (*dto.ExamItemResponse, error)
	RemoveItem(examID, itemID uint) error
	Reorder(examID uint, itemIDs []uint) error
	ListItems(examID uint) ([]dto.ExamItemResponse, error)
}

type compositionService struct {
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
	itemRepo     repository.ExamItemRepository
}

func NewCompositionService(
	examRepo repository.ExamRepository,
	questionRepo repository.QuestionRepository,
	itemRepo repository.ExamItemRepository,
) CompositionService {
	return &compositionService{
		examRepo:     examRepo,
		questionRepo: questionRepo,
		itemRepo:     itemRepo,
	}
}

func (s *compositionService) AddQuestion(examID, questionID uint, points *int) (*dto.ExamItemResponse, error) {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("exam %d", examID)
		}
		return nil, apperr.Storagef("loading exam %d: %v", examID, err)
	}
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("question %d", questionID)
		}
		return nil, apperr.Storagef("loading question %d: %v", questionID, err)
	}

	// An empty exam yields "no rows", not -1; the successor of the max
	// position only applies when items exist.
	maxPos, hasItems, err := s.itemRepo.MaxPosition(examID)
	if err != nil {
		return nil, apperr.Storagef("resolving max position for exam %d: %v", examID, err)
	}
	newPosition := 0
	if hasItems {
		newPosition = maxPos + 1
	}

	itemPoints := 1
	if points != nil {
		itemPoints = *points
	}

	questionID = question.ID
	item := model.ExamItem{
		ExamID:             examID,
		OriginalQuestionID: &questionID,
		SnapshotContent:    question.Content,
		SnapshotAnswer:     question.Answer,
		Points:             itemPoints,
		Position:           newPosition,
	}
	if err := s.itemRepo.Create(&item); err != nil {
		log.Error().Err(err).Uint("examID", examID).Uint("questionID", questionID).Msg("Failed to create exam item")
		return nil, apperr.Storagef("creating exam item: %v", err)
	}

	resp := itemToResponse(item)
	return &resp, nil
}

func (s *compositionService) RemoveItem(examID, itemID uint) error {
	item, err := s.itemRepo.FindByIDAndExam(itemID, examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("item %d in exam %d", itemID, examID)
		}
		return apperr.Storagef("loading item %d: %v", itemID, err)
	}
	// Remaining positions are left as-is. A removal may open a gap;
	// the next AddQuestion still appends after the highest position.
	if err := s.itemRepo.Delete(item.ID); err != nil {
		return apperr.Storagef("deleting item %d: %v", itemID, err)
	}
	return nil
}

func (s *compositionService) Reorder(examID uint, itemIDs []uint) error {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("exam %d", examID)
		}
		return apperr.Storagef("loading exam %d: %v", examID, err)
	}

	// Ids not belonging to this exam are skipped silently; items of
	// the exam missing from the list keep their old position.
	for position, itemID := range itemIDs {
		item, err := s.itemRepo.FindByIDAndExam(itemID, examID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return apperr.Storagef("loading item %d: %v", itemID, err)
		}
		item.Position = position
		if err := s.itemRepo.Update(item); err != nil {
			return apperr.Storagef("updating position of item %d: %v", itemID, err)
		}
	}
	return nil
}

func (s *compositionService) ListItems(examID uint) ([]dto.ExamItemResponse, error) {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("exam %d", examID)
		}
		return nil, apperr.Storagef("loading exam %d: %v", examID, err)
	}
	items, err := s.itemRepo.FindByExamID(examID)
	if err != nil {
		return nil, apperr.Storagef("listing items of exam %d: %v", examID, err)
	}

	resp := make([]dto.ExamItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, itemToResponse(item))
	}
	return resp, nil
}

func itemToResponse(item model.ExamItem) dto.ExamItemResponse {
	return dto.ExamItemResponse{
		ID:                 item.ID,
		ExamID:             item.ExamID,
		OriginalQuestionID: item.OriginalQuestionID,
		Content:            item.SnapshotContent,
		Answer:             item.SnapshotAnswer,
		Points:             item.Points,
		Position:           item.Position,
	}
}
