package admission

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/service/admission"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
	"github.com/aayaanhealth/hospital-api/pkg/httputil"
)

type Handler struct {
	service *admission.Service
}

func NewHandler(service *admission.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	admissions := r.Group("/admissions")
	{
		admissions.GET("", h.ListAdmissions)
		admissions.POST("", h.CreateAdmission)
	}
}

func (h *Handler) ListAdmissions(c *gin.Context) {
	admissions, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, admissions)
}

func (h *Handler) CreateAdmission(c *gin.Context) {
	var req model.CreateAdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.Validation(err.Error(), err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusCreated, gin.H{"id": created.ID.String()})
}
