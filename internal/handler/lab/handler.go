package lab

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/service/lab"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
	"github.com/aayaanhealth/hospital-api/pkg/httputil"
)

type Handler struct {
	service *lab.Service
}

func NewHandler(service *lab.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	labGroup := r.Group("/lab")
	{
		labGroup.POST("/tests", h.OrderTest)
		labGroup.POST("/results/upload", h.UploadResult)
		labGroup.GET("/tests/:patientId", h.ListTests)
	}
}

func (h *Handler) OrderTest(c *gin.Context) {
	var req model.CreateLabTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.Validation(err.Error(), err))
		return
	}

	created, err := h.service.Order(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusCreated, gin.H{"id": created.ID.String()})
}

// UploadResult takes a multipart form of test_id plus the result file
// and marks the test completed. Storage of the artifact itself is
// delegated; only the derived reference path is recorded.
func (h *Handler) UploadResult(c *gin.Context) {
	testID := c.PostForm("test_id")
	if testID == "" {
		httputil.RespondWithError(c, errors.Validation("test_id is required", nil))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		httputil.RespondWithError(c, errors.Validation("file is required", err))
		return
	}

	if err := h.service.UploadResult(c.Request.Context(), testID, file.Filename); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, gin.H{"message": "Result uploaded"})
}

func (h *Handler) ListTests(c *gin.Context) {
	tests, err := h.service.ListByPatient(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, tests)
}
