package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 30 * time.Second

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CompleteFinished(ctx context.Context, now time.Time) (int64, error)
}

// Metrics интерфейс для метрик
type Metrics interface {
	AddBookingsCompleted(n int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler периодически переводит прошедшие подтверждённые бронирования в completed
type Scheduler struct {
	cron     *cron.Cron
	chain    cron.Chain
	repo     BookingRepository
	metrics  Metrics
	location *time.Location
	logger   Logger
	now      func() time.Time
}

// New создает планировщик, расписание интерпретируется в часовом поясе площадок
func New(repo BookingRepository, metrics Metrics, location *time.Location, logger Logger) *Scheduler {
	if location == nil {
		location = time.Local
	}

	cronLog := cron.PrintfLogger(cronLogger{logger})
	wrappers := []cron.JobWrapper{cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(location)),
		chain:    cron.NewChain(wrappers...),
		repo:     repo,
		metrics:  metrics,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// cronLogger передаёт ошибки cron (в том числе паники задач) в логгер сервиса
type cronLogger struct {
	logger Logger
}

func (l cronLogger) Printf(format string, v ...interface{}) {
	l.logger.Error("Scheduler: "+format, v...)
}

// Start регистрирует задачу по расписанию spec ("@every 5m", "*/5 * * * *") и запускает планировщик
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddJob(spec, s.job()); err != nil {
		return fmt.Errorf("invalid complete bookings schedule %q: %w", spec, err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started: complete bookings schedule=%s", spec)
	return nil
}

// Stop останавливает планировщик и ждёт завершения текущей задачи
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped")
}

// job задача завершения бронирований с восстановлением после паники и пропуском пересекающихся запусков
func (s *Scheduler) job() cron.Job {
	return s.chain.Then(cron.FuncJob(s.runJob))
}

func (s *Scheduler) runJob() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.CompleteFinished(ctx); err != nil {
		s.logger.Error("Scheduler: %v", err)
	}
}

// CompleteFinished выполняет один проход завершения бронирований
func (s *Scheduler) CompleteFinished(ctx context.Context) (int64, error) {
	now := s.now().In(s.location)

	completed, err := s.repo.CompleteFinished(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("complete finished bookings: %w", err)
	}

	if completed > 0 {
		s.metrics.AddBookingsCompleted(completed)
		s.logger.Info("Scheduler: %d bookings marked as completed", completed)
	}

	return completed, nil
}
