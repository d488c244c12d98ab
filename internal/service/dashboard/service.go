package dashboard

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
)

const (
	summaryCacheKey = "summary"
	summaryCacheTTL = 30 * time.Second
	dateLayout      = "2006-01-02"
)

type Service struct {
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	labRepo         repository.LabTestRepository
	cache           *cache.Cache
	now             func() time.Time
}

func NewService(
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	labRepo repository.LabTestRepository,
) *Service {
	return &Service{
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		labRepo:         labRepo,
		cache:           cache.New(summaryCacheTTL, 5*time.Minute),
		now:             time.Now,
	}
}

// Summary aggregates today's appointment count, total patients and
// pending lab orders. Counts are cached briefly since the dashboard is
// polled.
func (s *Service) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	if cached, ok := s.cache.Get(summaryCacheKey); ok {
		return cached.(*model.DashboardSummary), nil
	}

	today := s.now().Format(dateLayout)

	appointmentsToday, err := s.appointmentRepo.CountByDate(ctx, today)
	if err != nil {
		return nil, errors.Internal(err)
	}

	patientsTotal, err := s.patientRepo.Count(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}

	labPending, err := s.labRepo.CountByStatus(ctx, model.LabTestStatusOrdered)
	if err != nil {
		return nil, errors.Internal(err)
	}

	summary := &model.DashboardSummary{
		AppointmentsToday: appointmentsToday,
		PatientsTotal:     patientsTotal,
		LabPending:        labPending,
		Alerts:            []string{},
	}

	s.cache.Set(summaryCacheKey, summary, cache.DefaultExpiration)
	return summary, nil
}
