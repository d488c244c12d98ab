package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aayaanhealth/hospital-api/internal/model"
)

type fakeAppointmentRepo struct {
	created []*model.Appointment
	gotDate string
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.created = append(r.created, a)
	return nil
}

func (r *fakeAppointmentRepo) ListByDate(_ context.Context, date string) ([]*model.Appointment, error) {
	r.gotDate = date
	var out []*model.Appointment
	for _, a := range r.created {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) CountByDate(_ context.Context, date string) (int64, error) {
	list, _ := r.ListByDate(context.Background(), date)
	return int64(len(list)), nil
}

func TestCreateDefaultsStatus(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := NewService(repo)

	appointment, err := svc.Create(context.Background(), &model.CreateAppointmentRequest{
		PatientID: "p1",
		DoctorID:  "d1",
		Date:      "2026-04-01",
		Time:      "10:30",
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusScheduled, appointment.Status)
}

func TestCreateKeepsExplicitStatus(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := NewService(repo)

	appointment, err := svc.Create(context.Background(), &model.CreateAppointmentRequest{
		PatientID: "p1",
		DoctorID:  "d1",
		Date:      "2026-04-01",
		Time:      "10:30",
		Status:    model.AppointmentStatusCancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCancelled, appointment.Status)
}

func TestListTodayUsesCurrentDate(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, 4, 1, 23, 59, 0, 0, time.UTC)
	}

	for _, date := range []string{"2026-04-01", "2026-04-02"} {
		_, err := svc.Create(context.Background(), &model.CreateAppointmentRequest{
			PatientID: "p1",
			DoctorID:  "d1",
			Date:      date,
			Time:      "09:00",
		})
		require.NoError(t, err)
	}

	today, err := svc.ListToday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-04-01", repo.gotDate)
	require.Len(t, today, 1)
	assert.Equal(t, "2026-04-01", today[0].Date)
}
