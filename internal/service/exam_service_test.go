package service

import (
	"errors"
	"testing"

	"github.com/hortiexam/hortiexam/internal/apperr"
	"github.com/hortiexam/hortiexam/internal/dto"
	"github.com/hortiexam/hortiexam/internal/model"
)

func newExamFixture() (ExamService, *fakeExamRepo, *fakeItemRepo) {
	itemRepo := newFakeItemRepo()
	examRepo := newFakeExamRepo(itemRepo)
	return NewExamService(examRepo), examRepo, itemRepo
}

func TestCreateExamDefaultsTitleAndStatus(t *testing.T) {
	svc, _, _ := newExamFixture()

	tests := []struct {
		name      string
		title     string
		wantTitle string
	}{
		{name: "explicit title", title: "Sommerprüfung 2026", wantTitle: "Sommerprüfung 2026"},
		{name: "empty title gets placeholder", title: "", wantTitle: model.DefaultExamTitle},
		{name: "whitespace title gets placeholder", title: "   ", wantTitle: model.DefaultExamTitle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.CreateExam(dto.CreateExamRequest{Title: tc.title})
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if resp.Title != tc.wantTitle {
				t.Fatalf("title = %q, want %q", resp.Title, tc.wantTitle)
			}
			if resp.Status != model.StatusDraft {
				t.Fatalf("status = %q, want %q", resp.Status, model.StatusDraft)
			}
		})
	}
}

func TestFinalizeExam(t *testing.T) {
	svc, examRepo, _ := newExamFixture()
	exam := model.Exam{Title: "T", Status: model.StatusDraft}
	examRepo.Create(&exam)

	resp, err := svc.FinalizeExam(exam.ID)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if resp.Status != model.StatusFinal {
		t.Fatalf("status = %q, want %q", resp.Status, model.StatusFinal)
	}

	if _, err := svc.FinalizeExam(999); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("unknown exam: err = %v, want ErrNotFound", err)
	}
}

func TestDeleteExamCascadesOnlyItsItems(t *testing.T) {
	svc, examRepo, itemRepo := newExamFixture()

	examA := model.Exam{Title: "A", Status: model.StatusDraft}
	examB := model.Exam{Title: "B", Status: model.StatusDraft}
	examRepo.Create(&examA)
	examRepo.Create(&examB)

	itemRepo.Create(&model.ExamItem{ExamID: examA.ID, SnapshotContent: "a0", SnapshotAnswer: "x", Position: 0})
	itemRepo.Create(&model.ExamItem{ExamID: examA.ID, SnapshotContent: "a1", SnapshotAnswer: "x", Position: 1})
	itemRepo.Create(&model.ExamItem{ExamID: examB.ID, SnapshotContent: "b0", SnapshotAnswer: "x", Position: 0})

	if err := svc.DeleteExam(examA.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	remainingA, _ := itemRepo.FindByExamID(examA.ID)
	if len(remainingA) != 0 {
		t.Fatalf("exam A items survived the cascade: %d", len(remainingA))
	}
	remainingB, _ := itemRepo.FindByExamID(examB.ID)
	if len(remainingB) != 1 {
		t.Fatalf("exam B items affected by cascade: %d, want 1", len(remainingB))
	}

	if err := svc.DeleteExam(examA.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestGetExamWithItemsOrdersByPosition(t *testing.T) {
	svc, examRepo, itemRepo := newExamFixture()
	exam := model.Exam{Title: "T", Status: model.StatusDraft}
	examRepo.Create(&exam)

	itemRepo.Create(&model.ExamItem{ExamID: exam.ID, SnapshotContent: "second", SnapshotAnswer: "x", Position: 1})
	itemRepo.Create(&model.ExamItem{ExamID: exam.ID, SnapshotContent: "first", SnapshotAnswer: "x", Position: 0})

	resp, err := svc.GetExamWithItems(exam.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(resp.Items))
	}
	if resp.Items[0].Content != "first" || resp.Items[1].Content != "second" {
		t.Fatalf("items unordered: %q, %q", resp.Items[0].Content, resp.Items[1].Content)
	}
}
