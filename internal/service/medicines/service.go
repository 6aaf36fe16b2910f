package medicines

import (
	"context"
	"fmt"
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/medicines/models"
)

// Service сервис аптеки
type Service struct {
	medicineRepo MedicineRepository
	billRepo     BillRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса аптеки
func NewService(
	medicineRepo MedicineRepository,
	billRepo BillRepository,
	logger Logger,
) *Service {
	return &Service{
		medicineRepo: medicineRepo,
		billRepo:     billRepo,
		logger:       logger,
	}
}

// List получает каталог лекарств
func (s *Service) List(ctx context.Context) (*models.MedicineListResponse, error) {
	s.logger.Info("List: fetching medicine catalog")

	medicines, err := s.medicineRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d medicines", len(medicines))
	return models.FromDomainMedicineList(medicines), nil
}

// Purchase покупает корзину лекарств.
// Вся корзина сворачивается в один счет типа medicines: пациент платит
// одной суммой, как на аптечной кассе.
func (s *Service) Purchase(ctx context.Context, req *models.PurchaseRequest) (*models.PurchaseResponse, error) {
	s.logger.Info("Purchase: patient=%d, %d cart items", req.PatientID, len(req.Items))

	if req.PatientID <= 0 {
		return nil, fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	ids := make([]int64, 0, len(req.Items))
	quantities := make(map[int64]int, len(req.Items))
	for _, item := range req.Items {
		if item.MedicineID <= 0 {
			return nil, fmt.Errorf("%w: medicineID must be positive", ErrInvalidInput)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
		}
		if _, seen := quantities[item.MedicineID]; !seen {
			ids = append(ids, item.MedicineID)
		}
		quantities[item.MedicineID] += item.Quantity
	}

	medicines, err := s.medicineRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Purchase: failed to get medicines: %v", err)
		return nil, fmt.Errorf("%w: Purchase - failed to get medicines: %v", ErrInternal, err)
	}

	if len(medicines) != len(ids) {
		s.logger.Warn("Purchase: cart references missing medicines, requested=%d, found=%d",
			len(ids), len(medicines))
		return nil, ErrMedicineNotFound
	}

	lines := make([]models.PurchaseLine, 0, len(medicines))
	var total float64
	for _, medicine := range medicines {
		quantity := quantities[medicine.ID]
		lineTotal := medicine.Cost * float64(quantity)
		total += lineTotal
		lines = append(lines, models.PurchaseLine{
			MedicineID: medicine.ID,
			Name:       medicine.Name,
			UnitCost:   medicine.Cost,
			Quantity:   quantity,
			LineTotal:  lineTotal,
		})
	}

	bill := &domain.Bill{
		PatientID: req.PatientID,
		Type:      domain.BillTypeMedicines,
		Amount:    total,
		Date:      domain.DateOnly(time.Now()),
	}

	createdBill, err := s.billRepo.Create(ctx, bill)
	if err != nil {
		s.logger.Error("Purchase: failed to create bill: %v", err)
		return nil, fmt.Errorf("%w: Purchase - failed to create bill: %v", ErrInternal, err)
	}

	s.logger.Info("Purchase: patient=%d bought %d items, bill id=%d, amount=%.2f",
		req.PatientID, len(lines), createdBill.ID, createdBill.Amount)

	return &models.PurchaseResponse{
		Lines:      lines,
		BillID:     createdBill.ID,
		BillAmount: createdBill.Amount,
	}, nil
}
