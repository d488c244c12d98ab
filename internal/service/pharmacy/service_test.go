package pharmacy

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
)

type fakeMedicineRepo struct {
	stock map[string]int
}

func (r *fakeMedicineRepo) Create(_ context.Context, m *model.Medicine) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.stock[m.ID.String()] = m.Stock
	return nil
}

func (r *fakeMedicineRepo) List(_ context.Context) ([]*model.Medicine, error) {
	return nil, nil
}

func (r *fakeMedicineRepo) DecrementStock(_ context.Context, id string, quantity int) error {
	if _, ok := r.stock[id]; !ok {
		return repository.ErrNotFound
	}
	r.stock[id] -= quantity
	return nil
}

type fakeDispenseRepo struct {
	created []*model.Dispense
}

func (r *fakeDispenseRepo) Create(_ context.Context, d *model.Dispense) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.created = append(r.created, d)
	return nil
}

type capturedEvent struct {
	channel string
	message interface{}
}

type fakeBroker struct {
	events []capturedEvent
}

func (b *fakeBroker) Publish(_ context.Context, channel string, message interface{}) error {
	b.events = append(b.events, capturedEvent{channel: channel, message: message})
	return nil
}

func (b *fakeBroker) Close() error { return nil }

func TestDispenseDecrementsStock(t *testing.T) {
	medicines := &fakeMedicineRepo{stock: map[string]int{"med-1": 10}}
	dispenses := &fakeDispenseRepo{}
	broker := &fakeBroker{}
	svc := NewService(medicines, dispenses, broker, zerolog.Nop())

	receipt, err := svc.Dispense(context.Background(), &model.CreateDispenseRequest{
		PatientID:      "patient-1",
		PrescriptionID: "rx-1",
		Items:          []model.DispenseItem{{MedicineID: "med-1", Quantity: 3, Price: 12.5}},
		Total:          37.5,
		Paid:           true,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, medicines.stock["med-1"])
	require.Len(t, dispenses.created, 1)
	assert.Equal(t, dispenses.created[0].ID.String(), receipt.ID)

	require.Len(t, receipt.StockUpdates, 1)
	assert.True(t, receipt.StockUpdates[0].Applied)
	assert.Empty(t, receipt.StockUpdates[0].Reason)
	assert.Empty(t, broker.events)
}

func TestDispenseUnknownMedicineDoesNotAbort(t *testing.T) {
	medicines := &fakeMedicineRepo{stock: map[string]int{"med-1": 10}}
	dispenses := &fakeDispenseRepo{}
	broker := &fakeBroker{}
	svc := NewService(medicines, dispenses, broker, zerolog.Nop())

	receipt, err := svc.Dispense(context.Background(), &model.CreateDispenseRequest{
		PatientID:      "patient-1",
		PrescriptionID: "rx-1",
		Items: []model.DispenseItem{
			{MedicineID: "ghost", Quantity: 2},
			{MedicineID: "med-1", Quantity: 4},
		},
	})
	require.NoError(t, err)

	// The dispense record persists even when decrements fail.
	require.Len(t, dispenses.created, 1)

	require.Len(t, receipt.StockUpdates, 2)
	assert.False(t, receipt.StockUpdates[0].Applied)
	assert.NotEmpty(t, receipt.StockUpdates[0].Reason)
	assert.True(t, receipt.StockUpdates[1].Applied)
	assert.Equal(t, 6, medicines.stock["med-1"])

	require.Len(t, broker.events, 1)
	assert.Equal(t, StockDiscrepancyChannel, broker.events[0].channel)
	event, ok := broker.events[0].message.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ghost", event["medicine_id"])
	assert.Equal(t, 2, event["quantity"])
}

func TestDispenseStockMayGoNegative(t *testing.T) {
	medicines := &fakeMedicineRepo{stock: map[string]int{"med-1": 1}}
	svc := NewService(medicines, &fakeDispenseRepo{}, nil, zerolog.Nop())

	receipt, err := svc.Dispense(context.Background(), &model.CreateDispenseRequest{
		PatientID:      "patient-1",
		PrescriptionID: "rx-1",
		Items:          []model.DispenseItem{{MedicineID: "med-1", Quantity: 5}},
	})
	require.NoError(t, err)
	assert.True(t, receipt.StockUpdates[0].Applied)
	assert.Equal(t, -4, medicines.stock["med-1"])
}

func TestDispenseNilBroker(t *testing.T) {
	medicines := &fakeMedicineRepo{stock: map[string]int{}}
	svc := NewService(medicines, &fakeDispenseRepo{}, nil, zerolog.Nop())

	receipt, err := svc.Dispense(context.Background(), &model.CreateDispenseRequest{
		PatientID:      "patient-1",
		PrescriptionID: "rx-1",
		Items:          []model.DispenseItem{{MedicineID: "ghost", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.False(t, receipt.StockUpdates[0].Applied)
}

func TestAddMedicine(t *testing.T) {
	medicines := &fakeMedicineRepo{stock: map[string]int{}}
	svc := NewService(medicines, &fakeDispenseRepo{}, nil, zerolog.Nop())

	stock := 25
	medicine, err := svc.AddMedicine(context.Background(), &model.CreateMedicineRequest{
		Name:  "Paracetamol 500mg",
		Stock: &stock,
		Price: 1.2,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, medicine.Stock)
	assert.Equal(t, 25, medicines.stock[medicine.ID.String()])
}
