package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applyLeaveHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/apply_leave"
	bookAppointmentHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/book_appointment"
	bookRoomHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/book_room"
	changePasswordHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/change_password"
	getAvailabilityHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/get_available_slots"
	getDoctorHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/get_doctor"
	getDoctorAppointmentsHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/get_doctor_appointments"
	getPatientHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/get_patient"
	getPatientAppointmentsHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/get_patient_appointments"
	getPatientBillsHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/get_patient_bills"
	getPatientTreatmentsHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/get_patient_treatments"
	listDoctorsHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/list_doctors"
	listLeavesHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/list_leaves"
	listMedicinesHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/list_medicines"
	listRoomsHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/list_rooms"
	loginHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/login"
	payBillHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/pay_bill"
	purchaseMedicinesHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/purchase_medicines"
	resolveLeaveHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/resolve_leave"
	signupHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/signup"
	startTreatmentHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/start_treatment"
	updateDoctorHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/update_doctor"
	updatePatientHandler "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers/update_patient"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/middleware"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/config"
	appointmentRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/appointment"
	billRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/bill"
	credentialRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/credential"
	doctorRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/doctor"
	leaveRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/leave"
	medicineRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/medicine"
	patientRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/patient"
	roomRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/room"
	treatmentRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/treatment"
	appointmentsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/appointments"
	authService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/auth"
	billsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/bills"
	doctorsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/doctors"
	leavesService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/leaves"
	medicinesService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/medicines"
	patientsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/patients"
	roomsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/rooms"
	bookAppointmentUC "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/usecase/book_appointment"
	getAvailableSlotsUC "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/usecase/get_available_slots"
	scanAvailabilityUC "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/usecase/scan_availability"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/logger"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/metrics"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Hospital-Management-Service...")
	log.Info("Configuration loaded from config.toml")

	schedule, err := cfg.DomainSchedule()
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}
	log.Info("Slot grid: %s-%s, %d min slots, booking window %d days",
		schedule.DayStart, schedule.DayEnd, schedule.SlotDurationMinutes, schedule.BookingWindowDays)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, stopMetricsCh)
		log.Info("Database pool metrics collection started")
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(db)
	billRepository := billRepo.NewRepository(db)
	credentialRepository := credentialRepo.NewRepository(db)
	doctorRepository := doctorRepo.NewRepository(db)
	leaveRepository := leaveRepo.NewRepository(db)
	medicineRepository := medicineRepo.NewRepository(db)
	patientRepository := patientRepo.NewRepository(db)
	roomRepository := roomRepo.NewRepository(db)
	treatmentRepository := treatmentRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, treatmentRepository, txMgr, log)
	authSvc := authService.NewService(credentialRepository, log)
	billsSvc := billsService.NewService(billRepository, log)
	doctorsSvc := doctorsService.NewService(doctorRepository, log)
	leavesSvc := leavesService.NewService(leaveRepository, doctorRepository, txMgr, log)
	medicinesSvc := medicinesService.NewService(medicineRepository, billRepository, log)
	patientsSvc := patientsService.NewService(patientRepository, log)
	roomsSvc := roomsService.NewService(roomRepository, billRepository, txMgr, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		doctorRepository,
		schedule,
		log,
	)
	scanAvailabilityUseCase := scanAvailabilityUC.NewUseCase(
		appointmentRepository,
		doctorRepository,
		schedule,
		log,
	)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		doctorRepository,
		patientRepository,
		billRepository,
		txMgr,
		schedule,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(scanAvailabilityUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)

	listDoctors := listDoctorsHandler.NewHandler(doctorsSvc, log)
	getDoctor := getDoctorHandler.NewHandler(doctorsSvc, log)
	updateDoctor := updateDoctorHandler.NewHandler(doctorsSvc, log)
	getDoctorAppointments := getDoctorAppointmentsHandler.NewHandler(appointmentsSvc, log)

	getPatient := getPatientHandler.NewHandler(patientsSvc, log)
	updatePatient := updatePatientHandler.NewHandler(patientsSvc, log)
	getPatientAppointments := getPatientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getPatientTreatments := getPatientTreatmentsHandler.NewHandler(appointmentsSvc, log)
	startTreatment := startTreatmentHandler.NewHandler(appointmentsSvc, log)

	getPatientBills := getPatientBillsHandler.NewHandler(billsSvc, log)
	payBill := payBillHandler.NewHandler(billsSvc, log)

	listRooms := listRoomsHandler.NewHandler(roomsSvc, log)
	bookRoom := bookRoomHandler.NewHandler(roomsSvc, log)

	listMedicines := listMedicinesHandler.NewHandler(medicinesSvc, log)
	purchaseMedicines := purchaseMedicinesHandler.NewHandler(medicinesSvc, log)

	applyLeave := applyLeaveHandler.NewHandler(leavesSvc, log)
	listLeaves := listLeavesHandler.NewHandler(leavesSvc, log)
	resolveLeave := resolveLeaveHandler.NewHandler(leavesSvc, log)

	login := loginHandler.NewHandler(authSvc, log)
	signup := signupHandler.NewHandler(authSvc, log)
	changePassword := changePasswordHandler.NewHandler(authSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Аутентификация
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup", signup.Handle).Methods(http.MethodPost)

	// Справочник врачей и доступность слотов
	api.HandleFunc("/doctors", listDoctors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}", getDoctor.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Каталоги палат и аптеки
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/medicines", listMedicines.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Аккаунт ---
	protected.HandleFunc("/auth/change-password", changePassword.Handle).Methods(http.MethodPost)

	// --- Запись к врачу ---
	protected.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)

	// --- Кабинет врача ---
	protected.HandleFunc("/doctors/{doctorId}", updateDoctor.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/doctors/{doctorId}/appointments", getDoctorAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/treatments", startTreatment.Handle).Methods(http.MethodPost)

	// --- Кабинет пациента ---
	protected.HandleFunc("/patients/{patientId}", getPatient.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{patientId}", updatePatient.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{patientId}/appointments", getPatientAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{patientId}/treatments", getPatientTreatments.Handle).Methods(http.MethodGet)

	// --- Счета ---
	protected.HandleFunc("/patients/{patientId}/bills", getPatientBills.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bills/{billId}/pay", payBill.Handle).Methods(http.MethodPatch)

	// --- Палаты и аптека ---
	protected.HandleFunc("/rooms/{roomId}/book", bookRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/medicines/purchase", purchaseMedicines.Handle).Methods(http.MethodPost)

	// --- Отпуска ---
	protected.HandleFunc("/leaves", applyLeave.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/leaves", listLeaves.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/leaves/{leaveId}", resolveLeave.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
