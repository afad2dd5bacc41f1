package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Urbancode-IT/INOUT-sub000/internal/events"
	"github.com/Urbancode-IT/INOUT-sub000/internal/schedule"
	scheduleerrors "github.com/Urbancode-IT/INOUT-sub000/internal/schedule/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle seeds a new employee's weekly schedule from
// the company default so presence classification works from day one.
// The upsert is idempotent, so redelivered events are harmless.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	scheduleService schedule.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		defaultWeek, err := scheduleService.GetDefaultWeek(ctx)
		if err != nil {
			if errors.Is(err, scheduleerrors.ErrScheduleNotFound) {
				log.Warn("no default schedule configured, skipping seed",
					zap.String("employee_id", event.EmployeeID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}
			log.Error("load default schedule failed", zap.Error(err))
			continue
		}

		req := schedule.UpsertWeekRequest{Days: make([]schedule.DayRequest, len(defaultWeek.Days))}
		for i, d := range defaultWeek.Days {
			req.Days[i] = schedule.DayRequest{
				Weekday:    d.Weekday,
				Start:      d.Start,
				End:        d.End,
				IsLeaveDay: d.IsLeaveDay,
			}
		}

		if _, err := scheduleService.SetEmployeeWeek(ctx, event.EmployeeID, req); err != nil {
			log.Error("seed employee schedule failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("employee schedule seeded from default",
			zap.String("employee_id", event.EmployeeID),
		)
	}
}
