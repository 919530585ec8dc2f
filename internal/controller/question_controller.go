package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hortiexam/hortiexam/internal/dto"
	"github.com/hortiexam/hortiexam/internal/repository"
)

// ListQuestionsHandler godoc
// @Summary List pool questions
// @Description Retrieve questions from the pool, filterable by category, tag, difficulty and active flag. Inactive questions are hidden unless active_only=false.
// @Tags questions
// @Produce json
// @Param category query string false "Filter by category"
// @Param tag query string false "Filter by tag"
// @Param difficulty query int false "Filter by difficulty (1-5)"
// @Param active_only query bool false "Only active questions (default true)"
// @Success 200 {array} dto.QuestionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (ctrl *Controller) ListQuestionsHandler(c *gin.Context) {
	filter := repository.QuestionFilter{
		Category:   c.Query("category"),
		Tag:        c.Query("tag"),
		ActiveOnly: c.DefaultQuery("active_only", "true") == "true",
	}
	if diffStr := c.Query("difficulty"); diffStr != "" {
		diff, err := strconv.Atoi(diffStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid difficulty format"})
			return
		}
		filter.Difficulty = &diff
	}

	questions, err := ctrl.questionSvc.ListQuestions(filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// CreateQuestionHandler godoc
// @Summary Create a pool question
// @Description Add a new question/answer pair to the pool by manual entry
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [post]
func (ctrl *Controller) CreateQuestionHandler(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	questionResp, err := ctrl.questionSvc.CreateQuestion(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, questionResp)
}

// GetQuestionHandler godoc
// @Summary Get a question by ID
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (ctrl *Controller) GetQuestionHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	questionResp, err := ctrl.questionSvc.GetQuestion(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questionResp)
}

// UpdateQuestionHandler godoc
// @Summary Update a pool question
// @Description Edit a question in the pool. Snapshots already taken into exams are not affected.
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.UpdateQuestionRequest true "Updated question data"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [put]
func (ctrl *Controller) UpdateQuestionHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	questionResp, err := ctrl.questionSvc.UpdateQuestion(id, req)
	if err != nil {
		log.Error().Err(err).Uint("id", id).Msg("Failed to update question")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questionResp)
}

// DeactivateQuestionHandler godoc
// @Summary Deactivate a question
// @Description Exclude the question from selection listings without deleting it
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id}/deactivate [post]
func (ctrl *Controller) DeactivateQuestionHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	questionResp, err := ctrl.questionSvc.DeactivateQuestion(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questionResp)
}

// DeleteQuestionHandler godoc
// @Summary Delete a question from the pool
// @Description Remove the pool entry. Existing exam items keep their snapshots and their weak reference.
// @Tags questions
// @Param id path int true "Question ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.questionSvc.DeleteQuestion(id); err != nil {
		log.Error().Err(err).Uint("id", id).Msg("Failed to delete question")
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
