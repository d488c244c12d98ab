package pharmacy

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
	"github.com/aayaanhealth/hospital-api/pkg/messaging"
)

// StockDiscrepancyChannel carries decrements that could not be applied,
// for an external reconciler to repair.
const StockDiscrepancyChannel = "pharmacy.stock_discrepancy"

type Service struct {
	medicineRepo repository.MedicineRepository
	dispenseRepo repository.DispenseRepository
	broker       messaging.Broker
	logger       zerolog.Logger
}

// NewService creates the pharmacy service. broker may be nil, which
// disables the discrepancy feed.
func NewService(
	medicineRepo repository.MedicineRepository,
	dispenseRepo repository.DispenseRepository,
	broker messaging.Broker,
	logger zerolog.Logger,
) *Service {
	return &Service{
		medicineRepo: medicineRepo,
		dispenseRepo: dispenseRepo,
		broker:       broker,
		logger:       logger,
	}
}

func (s *Service) ListMedicines(ctx context.Context) ([]*model.Medicine, error) {
	medicines, err := s.medicineRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return medicines, nil
}

func (s *Service) AddMedicine(ctx context.Context, req *model.CreateMedicineRequest) (*model.Medicine, error) {
	medicine := &model.Medicine{
		Name:         req.Name,
		Stock:        *req.Stock,
		Price:        req.Price,
		Manufacturer: req.Manufacturer,
		ExpiryDate:   req.ExpiryDate,
	}

	if err := s.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, errors.Internal(err)
	}
	return medicine, nil
}

// Dispense persists the dispense record and then decrements stock for
// each line item. A failed decrement is reported per item, logged and
// published to the discrepancy feed, but never rolls back the dispense
// or aborts the remaining items. Stock and dispense records may
// diverge.
func (s *Service) Dispense(ctx context.Context, req *model.CreateDispenseRequest) (*model.DispenseReceipt, error) {
	dispense := &model.Dispense{
		PatientID:      req.PatientID,
		PrescriptionID: req.PrescriptionID,
		Items:          req.Items,
		Total:          req.Total,
		Paid:           req.Paid,
	}

	if err := s.dispenseRepo.Create(ctx, dispense); err != nil {
		return nil, errors.Internal(err)
	}

	receipt := &model.DispenseReceipt{
		ID:           dispense.ID.String(),
		StockUpdates: make([]model.StockUpdate, 0, len(req.Items)),
	}

	for _, item := range req.Items {
		update := model.StockUpdate{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
			Applied:    true,
		}

		if err := s.medicineRepo.DecrementStock(ctx, item.MedicineID, item.Quantity); err != nil {
			update.Applied = false
			update.Reason = err.Error()

			s.logger.Warn().
				Err(err).
				Str("dispense_id", receipt.ID).
				Str("medicine_id", item.MedicineID).
				Int("quantity", item.Quantity).
				Msg("stock decrement failed")

			s.publishDiscrepancy(ctx, receipt.ID, update)
		}

		receipt.StockUpdates = append(receipt.StockUpdates, update)
	}

	return receipt, nil
}

func (s *Service) publishDiscrepancy(ctx context.Context, dispenseID string, update model.StockUpdate) {
	if s.broker == nil {
		return
	}

	event := map[string]interface{}{
		"dispense_id": dispenseID,
		"medicine_id": update.MedicineID,
		"quantity":    update.Quantity,
		"reason":      update.Reason,
	}
	if err := s.broker.Publish(ctx, StockDiscrepancyChannel, event); err != nil {
		s.logger.Warn().Err(err).Msg("failed to publish stock discrepancy")
	}
}
