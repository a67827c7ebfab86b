package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
)

// TypeAvailabilityReseed задача ночной пересборки календаря слотов
const TypeAvailabilityReseed = "availability:reseed"

// Worker фоновый обработчик задач поверх asynq.
// Единственная задача - пересборка календаря открытых слотов по расписанию:
// горизонт планирования сдвигается каждые сутки, вчерашние даты выпадают,
// новые добавляются.
type Worker struct {
	server       *asynq.Server
	scheduler    *asynq.Scheduler
	availability AvailabilityStore
	cronSpec     string
	logger       Logger
}

// New создает воркер с расписанием пересборки календаря
func New(redisOpt asynq.RedisClientOpt, availability AvailabilityStore, cronSpec string, logger Logger) *Worker {
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 1,
		Queues: map[string]int{
			"default": 1,
		},
	})
	scheduler := asynq.NewScheduler(redisOpt, nil)

	return &Worker{
		server:       server,
		scheduler:    scheduler,
		availability: availability,
		cronSpec:     cronSpec,
		logger:       logger,
	}
}

// Run регистрирует задачи и запускает обработчик с планировщиком.
// Блокируется до Shutdown.
func (w *Worker) Run() error {
	if _, err := w.scheduler.Register(w.cronSpec, asynq.NewTask(TypeAvailabilityReseed, nil)); err != nil {
		return fmt.Errorf("worker: failed to register reseed schedule: %w", err)
	}

	if err := w.scheduler.Start(); err != nil {
		return fmt.Errorf("worker: failed to start scheduler: %w", err)
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAvailabilityReseed, w.handleReseed)

	w.logger.Info("Worker: started, reseed schedule %q", w.cronSpec)
	if err := w.server.Run(mux); err != nil {
		return fmt.Errorf("worker: server stopped: %w", err)
	}
	return nil
}

// Shutdown останавливает планировщик и обработчик
func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
	w.logger.Info("Worker: stopped")
}

func (w *Worker) handleReseed(ctx context.Context, _ *asynq.Task) error {
	w.logger.Info("Worker: reseeding availability calendar")

	if err := w.availability.Reseed(ctx); err != nil {
		w.logger.Error("Worker: reseed failed: %v", err)
		return err
	}

	w.logger.Info("Worker: availability calendar reseeded")
	return nil
}
