package service

import (
	"errors"
	"sort"

	"github.com/hortiexam/hortiexam/internal/model"
	"github.com/hortiexam/hortiexam/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the contracts of the real
// GORM repositories, including gorm.ErrRecordNotFound on misses, so
// the services under test see the same error surface.

type fakeQuestionRepo struct {
	seq           uint
	questions     map[uint]model.Question
	failOnContent map[string]bool
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[uint]model.Question)}
}

func (r *fakeQuestionRepo) Create(q *model.Question) error {
	if r.failOnContent[q.Content] {
		return errors.New("insert failed")
	}
	r.seq++
	q.ID = r.seq
	r.questions[q.ID] = *q
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (r *fakeQuestionRepo) FindFiltered(filter repository.QuestionFilter) ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.questions {
		if filter.ActiveOnly && !q.Active {
			continue
		}
		if filter.Category != "" && q.Category != filter.Category {
			continue
		}
		if filter.Difficulty != nil && q.Difficulty != *filter.Difficulty {
			continue
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeQuestionRepo) Update(q *model.Question) error {
	if _, ok := r.questions[q.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.questions[q.ID] = *q
	return nil
}

func (r *fakeQuestionRepo) Delete(id uint) error {
	delete(r.questions, id)
	return nil
}

type fakeItemRepo struct {
	seq   uint
	items map[uint]model.ExamItem
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uint]model.ExamItem)}
}

func (r *fakeItemRepo) Create(item *model.ExamItem) error {
	r.seq++
	item.ID = r.seq
	r.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) FindByIDAndExam(id, examID uint) (*model.ExamItem, error) {
	item, ok := r.items[id]
	if !ok || item.ExamID != examID {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (r *fakeItemRepo) FindByExamID(examID uint) ([]model.ExamItem, error) {
	var out []model.ExamItem
	for _, item := range r.items {
		if item.ExamID == examID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeItemRepo) MaxPosition(examID uint) (int, bool, error) {
	max, found := 0, false
	for _, item := range r.items {
		if item.ExamID != examID {
			continue
		}
		if !found || item.Position > max {
			max = item.Position
		}
		found = true
	}
	return max, found, nil
}

func (r *fakeItemRepo) Update(item *model.ExamItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) Delete(id uint) error {
	delete(r.items, id)
	return nil
}

type fakeExamRepo struct {
	seq   uint
	exams map[uint]model.Exam
	// cascade target, mirroring the transactional delete of the real
	// repository
	itemRepo *fakeItemRepo
}

func newFakeExamRepo(itemRepo *fakeItemRepo) *fakeExamRepo {
	return &fakeExamRepo{exams: make(map[uint]model.Exam), itemRepo: itemRepo}
}

func (r *fakeExamRepo) Create(exam *model.Exam) error {
	r.seq++
	exam.ID = r.seq
	r.exams[exam.ID] = *exam
	return nil
}

func (r *fakeExamRepo) FindByID(id uint) (*model.Exam, error) {
	exam, ok := r.exams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &exam, nil
}

func (r *fakeExamRepo) FindByIDWithItems(id uint) (*model.Exam, error) {
	exam, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if r.itemRepo != nil {
		items, _ := r.itemRepo.FindByExamID(id)
		exam.Items = items
	}
	return exam, nil
}

func (r *fakeExamRepo) FindAll() ([]model.Exam, error) {
	var out []model.Exam
	for _, exam := range r.exams {
		out = append(out, exam)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeExamRepo) Update(exam *model.Exam) error {
	if _, ok := r.exams[exam.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.exams[exam.ID] = *exam
	return nil
}

func (r *fakeExamRepo) Delete(id uint) error {
	delete(r.exams, id)
	if r.itemRepo != nil {
		for itemID, item := range r.itemRepo.items {
			if item.ExamID == id {
				delete(r.itemRepo.items, itemID)
			}
		}
	}
	return nil
}
