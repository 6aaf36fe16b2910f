package rooms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	roomRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/room"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/rooms/models"
)

// Service сервис для работы с палатами
type Service struct {
	roomRepo  RoomRepository
	billRepo  BillRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса палат
func NewService(
	roomRepo RoomRepository,
	billRepo BillRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:  roomRepo,
		billRepo:  billRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// List получает список палат с фильтрацией по типу и доступности
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms, roomType=%v, onlyAvailable=%v", req.RoomType, req.OnlyAvailable)

	rooms, err := s.roomRepo.List(ctx, roomRepo.Filter{
		RoomType:      req.RoomType,
		OnlyAvailable: req.OnlyAvailable,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// Book бронирует палату для пациента.
// Проверка доступности, смена статуса и выставление счета выполняются
// одной транзакцией: палата читается с блокировкой, и из двух
// одновременных запросов второй увидит её занятой.
func (s *Service) Book(ctx context.Context, req *models.BookRoomRequest) (*models.BookRoomResponse, error) {
	s.logger.Info("Book: booking room id=%d for patient=%d", req.RoomID, req.PatientID)

	if req.RoomID <= 0 || req.PatientID <= 0 {
		return nil, fmt.Errorf("%w: roomID and patientID must be positive", ErrInvalidInput)
	}

	var bookedRoom *domain.Room
	var createdBill *domain.Bill

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		room, err := s.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				s.logger.Warn("Book: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			s.logger.Error("Book: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if !room.IsAvailable() {
			s.logger.Warn("Book: room id=%d is not available, status=%s", req.RoomID, room.AvailabilityStatus)
			return ErrRoomNotAvailable
		}

		if err := s.roomRepo.SetStatus(txCtx, room.ID, domain.RoomStatusOccupied); err != nil {
			s.logger.Error("Book: failed to occupy room id=%d: %v", room.ID, err)
			return fmt.Errorf("%w: failed to occupy room: %v", ErrInternal, err)
		}

		bill := &domain.Bill{
			PatientID: req.PatientID,
			Type:      domain.BillTypeRoom,
			Amount:    room.Cost,
			Date:      domain.DateOnly(time.Now()),
		}

		createdBill, err = s.billRepo.Create(txCtx, bill)
		if err != nil {
			s.logger.Error("Book: failed to create bill: %v", err)
			return fmt.Errorf("%w: failed to create bill: %v", ErrInternal, err)
		}

		room.AvailabilityStatus = domain.RoomStatusOccupied
		bookedRoom = room
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Book: room id=%d booked for patient=%d, bill id=%d, amount=%.2f",
		bookedRoom.ID, req.PatientID, createdBill.ID, createdBill.Amount)

	return &models.BookRoomResponse{
		Room:       *models.FromDomainRoom(bookedRoom),
		BillID:     createdBill.ID,
		BillAmount: createdBill.Amount,
	}, nil
}
