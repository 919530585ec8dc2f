package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hortiexam/hortiexam/config"
	"github.com/hortiexam/hortiexam/internal/apperr"
	"github.com/hortiexam/hortiexam/internal/dto"
	"github.com/hortiexam/hortiexam/internal/service"
)

type Controller struct {
	questionSvc    service.QuestionService
	examSvc        service.ExamService
	compositionSvc service.CompositionService
	importSvc      service.ImportService
	exportSvc      service.ExportService
	cfg            *config.Config
}

func NewController(
	qSvc service.QuestionService,
	eSvc service.ExamService,
	cSvc service.CompositionService,
	iSvc service.ImportService,
	xSvc service.ExportService,
	cfg *config.Config,
) *Controller {
	return &Controller{
		questionSvc:    qSvc,
		examSvc:        eSvc,
		compositionSvc: cSvc,
		importSvc:      iSvc,
		exportSvc:      xSvc,
		cfg:            cfg,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	{
		questions := apiV1.Group("/questions")
		questions.GET("", ctrl.ListQuestionsHandler)
		questions.POST("", ctrl.CreateQuestionHandler)
		questions.GET("/:id", ctrl.GetQuestionHandler)
		questions.PUT("/:id", ctrl.UpdateQuestionHandler)
		questions.POST("/:id/deactivate", ctrl.DeactivateQuestionHandler)
		questions.DELETE("/:id", ctrl.DeleteQuestionHandler)

		exams := apiV1.Group("/exams")
		exams.POST("", ctrl.CreateExamHandler)
		exams.GET("", ctrl.GetAllExamsHandler)
		exams.GET("/:id", ctrl.GetExamHandler)
		exams.DELETE("/:id", ctrl.DeleteExamHandler)
		exams.POST("/:id/finalize", ctrl.FinalizeExamHandler)
		exams.GET("/:id/items", ctrl.ListItemsHandler)
		exams.POST("/:id/items", ctrl.AddItemHandler)
		exams.DELETE("/:id/items/:item_id", ctrl.RemoveItemHandler)
		exams.POST("/:id/reorder", ctrl.ReorderHandler)
		exams.GET("/:id/export", ctrl.ExportExamHandler)

		importGroup := apiV1.Group("/import")
		importGroup.POST("/upload", ctrl.ImportUploadHandler)
		importGroup.POST("/extract", ctrl.ImportExtractHandler)
	}
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrExternalService):
		status = http.StatusBadGateway
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}
