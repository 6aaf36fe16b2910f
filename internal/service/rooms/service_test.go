package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	roomRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/room"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/rooms/models"
)

type fakeRoomRepo struct {
	room      *domain.Room
	getErr    error
	newStatus *domain.RoomStatus
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, f.getErr
}

func (f *fakeRoomRepo) List(_ context.Context, _ roomRepo.Filter) ([]*domain.Room, error) {
	return []*domain.Room{f.room}, nil
}

func (f *fakeRoomRepo) SetStatus(_ context.Context, _ int64, status domain.RoomStatus) error {
	f.newStatus = &status
	return nil
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

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func availableRoom() *domain.Room {
	return &domain.Room{
		ID:                 4,
		RoomType:           "icu",
		AvailabilityStatus: domain.RoomStatusAvailable,
		Cost:               2500,
	}
}

func TestBook_OccupiesRoomAndIssuesBill(t *testing.T) {
	rooms := &fakeRoomRepo{room: availableRoom()}
	bills := &fakeBillRepo{}
	tx := &fakeTxManager{}
	s := NewService(rooms, bills, tx, nopLogger{})

	resp, err := s.Book(context.Background(), &models.BookRoomRequest{PatientID: 5, RoomID: 4})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls, "booking must run in a transaction")
	require.NotNil(t, rooms.newStatus)
	assert.Equal(t, domain.RoomStatusOccupied, *rooms.newStatus)
	assert.Equal(t, string(domain.RoomStatusOccupied), resp.Room.AvailabilityStatus)

	require.NotNil(t, bills.created)
	assert.Equal(t, domain.BillTypeRoom, bills.created.Type)
	assert.Equal(t, 2500.0, bills.created.Amount)
	assert.Equal(t, int64(77), resp.BillID)
	assert.Equal(t, 2500.0, resp.BillAmount)
}

func TestBook_RoomOccupied(t *testing.T) {
	occupied := availableRoom()
	occupied.AvailabilityStatus = domain.RoomStatusOccupied
	rooms := &fakeRoomRepo{room: occupied}
	bills := &fakeBillRepo{}
	s := NewService(rooms, bills, &fakeTxManager{}, nopLogger{})

	_, err := s.Book(context.Background(), &models.BookRoomRequest{PatientID: 5, RoomID: 4})
	assert.ErrorIs(t, err, ErrRoomNotAvailable)
	assert.Nil(t, rooms.newStatus)
	assert.Nil(t, bills.created)
}

func TestBook_RoomNotFound(t *testing.T) {
	s := NewService(&fakeRoomRepo{getErr: roomRepo.ErrRoomNotFound}, &fakeBillRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := s.Book(context.Background(), &models.BookRoomRequest{PatientID: 5, RoomID: 404})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestBook_InvalidInput(t *testing.T) {
	s := NewService(&fakeRoomRepo{}, &fakeBillRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := s.Book(context.Background(), &models.BookRoomRequest{PatientID: 0, RoomID: 4})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
