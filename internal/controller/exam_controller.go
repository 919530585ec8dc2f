package controller

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hortiexam/hortiexam/internal/dto"
)

// CreateExamHandler godoc
// @Summary Create a new exam
// @Description Create an empty draft exam. A blank title gets a placeholder.
// @Tags exams
// @Accept json
// @Produce json
// @Param exam body dto.CreateExamRequest true "Exam data"
// @Success 201 {object} dto.ExamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams [post]
func (ctrl *Controller) CreateExamHandler(c *gin.Context) {
	var req dto.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	examResp, err := ctrl.examSvc.CreateExam(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create exam")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, examResp)
}

// GetAllExamsHandler godoc
// @Summary List all exams
// @Tags exams
// @Produce json
// @Success 200 {array} dto.ExamSummaryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams [get]
func (ctrl *Controller) GetAllExamsHandler(c *gin.Context) {
	exams, err := ctrl.examSvc.GetAllExams()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list exams")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exams)
}

// GetExamHandler godoc
// @Summary Get an exam with its items
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id} [get]
func (ctrl *Controller) GetExamHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	examResp, err := ctrl.examSvc.GetExamWithItems(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, examResp)
}

// DeleteExamHandler godoc
// @Summary Delete an exam
// @Description Delete the exam and all of its items in one transaction
// @Tags exams
// @Param id path int true "Exam ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id} [delete]
func (ctrl *Controller) DeleteExamHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.examSvc.DeleteExam(id); err != nil {
		log.Error().Err(err).Uint("id", id).Msg("Failed to delete exam")
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// FinalizeExamHandler godoc
// @Summary Finalize an exam
// @Description Flip the exam status from Draft to Final
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id}/finalize [post]
func (ctrl *Controller) FinalizeExamHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	examResp, err := ctrl.examSvc.FinalizeExam(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, examResp)
}

// ListItemsHandler godoc
// @Summary List the items of an exam
// @Description Items in ascending position order, ties broken by id
// @Tags items
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {array} dto.ExamItemResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id}/items [get]
func (ctrl *Controller) ListItemsHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	items, err := ctrl.compositionSvc.ListItems(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddItemHandler godoc
// @Summary Add a question to an exam
// @Description Snapshot the question's content and answer into a new exam item appended after the highest position
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param item body dto.AddItemRequest true "Question reference and points"
// @Success 201 {object} dto.ExamItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id}/items [post]
func (ctrl *Controller) AddItemHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind AddItemRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	itemResp, err := ctrl.compositionSvc.AddQuestion(id, req.QuestionID, req.Points)
	if err != nil {
		log.Error().Err(err).Uint("examID", id).Uint("questionID", req.QuestionID).Msg("Failed to add question to exam")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, itemResp)
}

// RemoveItemHandler godoc
// @Summary Remove an item from an exam
// @Description Delete the item. Positions of the remaining items are not compacted.
// @Tags items
// @Param id path int true "Exam ID"
// @Param item_id path int true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id}/items/{item_id} [delete]
func (ctrl *Controller) RemoveItemHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}
	if err := ctrl.compositionSvc.RemoveItem(id, itemID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReorderHandler godoc
// @Summary Reorder the items of an exam
// @Description Assign positions by list index. Ids not in the exam are ignored; items missing from the list keep their position.
// @Tags items
// @Accept json
// @Param id path int true "Exam ID"
// @Param order body dto.ReorderRequest true "Desired item order"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id}/reorder [post]
func (ctrl *Controller) ReorderHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := ctrl.compositionSvc.Reorder(id, req.ItemIDs); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportExamHandler godoc
// @Summary Export an exam as a document
// @Description Download the exam as a workbook with a questions sheet and a separate answers sheet. Markup is stripped from the exported fields.
// @Tags exams
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Exam ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id}/export [get]
func (ctrl *Controller) ExportExamHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var buf bytes.Buffer
	filename, err := ctrl.exportSvc.ExportExam(id, &buf)
	if err != nil {
		log.Error().Err(err).Uint("id", id).Msg("Failed to export exam")
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
