package ambulance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/service/ambulance"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
	"github.com/aayaanhealth/hospital-api/pkg/httputil"
)

type Handler struct {
	service *ambulance.Service
}

func NewHandler(service *ambulance.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the ambulance endpoint. It stays outside the
// authenticated group: emergencies do not carry tokens.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/ambulance/request", h.RequestAmbulance)
}

func (h *Handler) RequestAmbulance(c *gin.Context) {
	var req model.CreateAmbulanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.Validation(err.Error(), err))
		return
	}

	created, err := h.service.Request(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusCreated, gin.H{"id": created.ID.String()})
}
