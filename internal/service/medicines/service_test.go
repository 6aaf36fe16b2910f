package medicines

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/medicines/models"
)

type fakeMedicineRepo struct {
	catalog map[int64]*domain.Medicine
}

func (f *fakeMedicineRepo) List(_ context.Context) ([]*domain.Medicine, error) {
	result := make([]*domain.Medicine, 0, len(f.catalog))
	for _, medicine := range f.catalog {
		result = append(result, medicine)
	}
	return result, nil
}

func (f *fakeMedicineRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Medicine, error) {
	result := make([]*domain.Medicine, 0, len(ids))
	for _, id := range ids {
		if medicine, ok := f.catalog[id]; ok {
			result = append(result, medicine)
		}
	}
	return result, nil
}

type fakeBillRepo struct {
	created *domain.Bill
}

func (f *fakeBillRepo) Create(_ context.Context, bill *domain.Bill) (*domain.Bill, error) {
	created := *bill
	created.ID = 77
	f.created = &created
	return &created, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCatalog() *fakeMedicineRepo {
	return &fakeMedicineRepo{catalog: map[int64]*domain.Medicine{
		1: {ID: 1, Name: "Paracetamol", Cost: 20},
		2: {ID: 2, Name: "Amoxicillin", Cost: 150},
	}}
}

func TestPurchase_SingleBillForCart(t *testing.T) {
	bills := &fakeBillRepo{}
	s := NewService(testCatalog(), bills, nopLogger{})

	resp, err := s.Purchase(context.Background(), &models.PurchaseRequest{
		PatientID: 5,
		Items: []models.CartItem{
			{MedicineID: 1, Quantity: 2},
			{MedicineID: 2, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Lines, 2)
	assert.Equal(t, 190.0, resp.BillAmount)
	assert.Equal(t, int64(77), resp.BillID)

	// Вся корзина - один счет типа medicines
	require.NotNil(t, bills.created)
	assert.Equal(t, domain.BillTypeMedicines, bills.created.Type)
	assert.Equal(t, 190.0, bills.created.Amount)
	assert.Equal(t, int64(5), bills.created.PatientID)
}

func TestPurchase_MergesDuplicateItems(t *testing.T) {
	s := NewService(testCatalog(), &fakeBillRepo{}, nopLogger{})

	resp, err := s.Purchase(context.Background(), &models.PurchaseRequest{
		PatientID: 5,
		Items: []models.CartItem{
			{MedicineID: 1, Quantity: 2},
			{MedicineID: 1, Quantity: 3},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 5, resp.Lines[0].Quantity)
	assert.Equal(t, 100.0, resp.Lines[0].LineTotal)
	assert.Equal(t, 100.0, resp.BillAmount)
}

func TestPurchase_UnknownMedicine(t *testing.T) {
	bills := &fakeBillRepo{}
	s := NewService(testCatalog(), bills, nopLogger{})

	_, err := s.Purchase(context.Background(), &models.PurchaseRequest{
		PatientID: 5,
		Items: []models.CartItem{
			{MedicineID: 1, Quantity: 1},
			{MedicineID: 99, Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, ErrMedicineNotFound)
	assert.Nil(t, bills.created, "no bill for a failed cart")
}

func TestPurchase_EmptyCart(t *testing.T) {
	s := NewService(testCatalog(), &fakeBillRepo{}, nopLogger{})

	_, err := s.Purchase(context.Background(), &models.PurchaseRequest{PatientID: 5})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPurchase_InvalidItems(t *testing.T) {
	s := NewService(testCatalog(), &fakeBillRepo{}, nopLogger{})

	_, err := s.Purchase(context.Background(), &models.PurchaseRequest{
		PatientID: 5,
		Items:     []models.CartItem{{MedicineID: 1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Purchase(context.Background(), &models.PurchaseRequest{
		PatientID: 5,
		Items:     []models.CartItem{{MedicineID: -1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
