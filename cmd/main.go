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

	cancelReservationHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/cancel_reservation"
	checkInHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/check_in_reservation"
	checkOutHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/check_out_reservation"
	createReservationHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/create_reservation"
	createRoomHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/create_room"
	createRoomTypeHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/create_room_type"
	deleteRoomHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/delete_room"
	deleteRoomTypeHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/delete_room_type"
	getAvailableRoomsHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/get_available_rooms"
	getDailyRevenueHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/get_daily_revenue"
	getOccupancyHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/get_occupancy"
	getReservationHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/get_reservation"
	getReservationsHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/get_reservations"
	getRoomHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/get_room"
	getStatisticsHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/get_statistics"
	listRoomTypesHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/list_room_types"
	listRoomsHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/list_rooms"
	updateRoomHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/update_room"
	updateRoomTypeHandler "github.com/ouleymatou/HMS-ReservationService/internal/api/handlers/update_room_type"
	"github.com/ouleymatou/HMS-ReservationService/internal/api/middleware"
	"github.com/ouleymatou/HMS-ReservationService/internal/config"
	reservationRepo "github.com/ouleymatou/HMS-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/ouleymatou/HMS-ReservationService/internal/infra/storage/room"
	roomTypeRepo "github.com/ouleymatou/HMS-ReservationService/internal/infra/storage/roomtype"
	catalogService "github.com/ouleymatou/HMS-ReservationService/internal/service/catalog"
	reportsService "github.com/ouleymatou/HMS-ReservationService/internal/service/reports"
	reservationsService "github.com/ouleymatou/HMS-ReservationService/internal/service/reservations"
	bookReservationUC "github.com/ouleymatou/HMS-ReservationService/internal/usecase/book_reservation"
	findAvailableRoomsUC "github.com/ouleymatou/HMS-ReservationService/internal/usecase/find_available_rooms"
	"github.com/ouleymatou/HMS-ReservationService/pkg/dbmetrics"
	"github.com/ouleymatou/HMS-ReservationService/pkg/logger"
	"github.com/ouleymatou/HMS-ReservationService/pkg/metrics"
	"github.com/ouleymatou/HMS-ReservationService/pkg/simpletxmanager"
	"github.com/ouleymatou/HMS-ReservationService/pkg/txmanager"
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

	log.Info("Starting HMS-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Minute)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		roomTypeRepository    *roomTypeRepo.Repository
		roomRepository        *roomRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		roomTypeRepository = roomTypeRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		roomTypeRepository = roomTypeRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(
		roomTypeRepository,
		roomRepository,
		reservationRepository,
		txMgr,
		catalogService.RealTimeProvider{},
		log,
		cfg.Hotel.RoomNumberPrefix,
	)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		roomRepository,
		txMgr,
		reservationsService.RealTimeProvider{},
		log,
	)
	reportsSvc := reportsService.NewService(
		reservationRepository,
		roomRepository,
		reportsService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	bookReservationUseCase := bookReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		txMgr,
		log,
		cfg.Hotel.CheckInTime,
		cfg.Hotel.CheckOutTime,
	)

	findAvailableRoomsUseCase := findAvailableRoomsUC.NewUseCase(
		roomRepository,
		reservationRepository,
		log,
		cfg.Hotel.CheckInTime,
		cfg.Hotel.CheckOutTime,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(bookReservationUseCase, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(findAvailableRoomsUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getReservations := getReservationsHandler.NewHandler(reservationsSvc, log)
	checkInReservation := checkInHandler.NewHandler(reservationsSvc, log)
	checkOutReservation := checkOutHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	listRooms := listRoomsHandler.NewHandler(catalogSvc, log)
	getRoom := getRoomHandler.NewHandler(catalogSvc, log)
	createRoom := createRoomHandler.NewHandler(catalogSvc, log)
	updateRoom := updateRoomHandler.NewHandler(catalogSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(catalogSvc, log)
	listRoomTypes := listRoomTypesHandler.NewHandler(catalogSvc, log)
	createRoomType := createRoomTypeHandler.NewHandler(catalogSvc, log)
	updateRoomType := updateRoomTypeHandler.NewHandler(catalogSvc, log)
	deleteRoomType := deleteRoomTypeHandler.NewHandler(catalogSvc, log)
	getStatistics := getStatisticsHandler.NewHandler(reportsSvc, log)
	getOccupancy := getOccupancyHandler.NewHandler(reportsSvc, log)
	getDailyRevenue := getDailyRevenueHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Réservations ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}/checkin", checkInReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}/checkout", checkOutReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// --- Chambres ---
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", updateRoom.Handle).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{id}", deleteRoom.Handle).Methods(http.MethodDelete)

	// --- Types de chambres ---
	api.HandleFunc("/room-types", listRoomTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/room-types", createRoomType.Handle).Methods(http.MethodPost)
	api.HandleFunc("/room-types/{id}", updateRoomType.Handle).Methods(http.MethodPut)
	api.HandleFunc("/room-types/{id}", deleteRoomType.Handle).Methods(http.MethodDelete)

	// --- Statistiques ---
	api.HandleFunc("/statistics", getStatistics.Handle).Methods(http.MethodGet)
	api.HandleFunc("/statistics/revenue-today", getDailyRevenue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/occupancy", getOccupancy.Handle).Methods(http.MethodGet)

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
