package appointment

import (
	"context"
	"time"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
)

const dateLayout = "2006-01-02"

type Service struct {
	appointmentRepo repository.AppointmentRepository
	now             func() time.Time
}

func NewService(appointmentRepo repository.AppointmentRepository) *Service {
	return &Service{appointmentRepo: appointmentRepo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	status := req.Status
	if status == "" {
		status = model.AppointmentStatusScheduled
	}

	appointment := &model.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    status,
		Reason:    req.Reason,
		Notes:     req.Notes,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, errors.Internal(err)
	}
	return appointment, nil
}

// ListToday returns appointments whose date equals the server's current
// calendar date.
func (s *Service) ListToday(ctx context.Context) ([]*model.Appointment, error) {
	today := s.now().Format(dateLayout)

	appointments, err := s.appointmentRepo.ListByDate(ctx, today)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return appointments, nil
}
