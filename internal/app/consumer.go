package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Urbancode-IT/INOUT-sub000/internal/employee"
	"github.com/Urbancode-IT/INOUT-sub000/internal/events"
	"github.com/Urbancode-IT/INOUT-sub000/internal/messaging/kafka/consumer"
	"github.com/Urbancode-IT/INOUT-sub000/internal/payroll"
	"github.com/Urbancode-IT/INOUT-sub000/internal/schedule"
	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/connection"
	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/counter"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer runs the downstream event consumers: payslip rendering
// and default-schedule seeding for new employees.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	payslipStore, err := payroll.NewDiskPayslipStore(envOr("PAYSLIP_DIR", filepath.Join("storage", "payslips")))
	if err != nil {
		return err
	}

	employeeRepo := employee.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeService := employee.NewService(sqlDB, employeeRepo, counterRepo, nil)

	payrollRepo := payroll.NewRepository(gormDB)
	// The consumer only renders payslips, so the summary source and
	// outbox used by Generate are not wired here.
	payrollService := payroll.NewService(sqlDB, payrollRepo, nil, employeeService, nil, payslipStore)

	scheduleRepo := schedule.NewRepository(gormDB)
	scheduleService := schedule.NewService(scheduleRepo)

	payslipReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayslipRequestedTopic,
		GroupID:        "inout-payslip-renderer",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer payslipReader.Close()

	lifecycleReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.EmployeeCreatedTopic,
		GroupID:        "inout-schedule-seed",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer lifecycleReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayslipRequested(ctx, payslipReader, payrollService, logger)
	go consumer.ConsumeEmployeeLifecycle(ctx, lifecycleReader, scheduleService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
