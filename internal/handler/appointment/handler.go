package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/service/appointment"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
	"github.com/aayaanhealth/hospital-api/pkg/httputil"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("/today", h.TodayAppointments)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
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

func (h *Handler) TodayAppointments(c *gin.Context) {
	appointments, err := h.service.ListToday(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusOK, appointments)
}
