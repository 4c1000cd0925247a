package jobs

import (
	"context"
	"time"
)

// defaultRecalcTimeout максимальное время одного пересчета
const defaultRecalcTimeout = 5 * time.Minute

// StatsRepository интерфейс репозитория статистики длительностей
type StatsRepository interface {
	Recalculate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// StatsRecalculator фоновая задача пересчета агрегатов фактических
// длительностей. Реализует cron.Job.
type StatsRecalculator struct {
	statsRepo StatsRepository
	logger    Logger
	timeout   time.Duration
}

// NewStatsRecalculator создает новую задачу пересчета статистики
func NewStatsRecalculator(statsRepo StatsRepository, logger Logger) *StatsRecalculator {
	return &StatsRecalculator{
		statsRepo: statsRepo,
		logger:    logger,
		timeout:   defaultRecalcTimeout,
	}
}

// Run выполняет один пересчет. Ошибка логируется, а не возвращается:
// следующий запуск по расписанию пересчитает агрегаты заново.
func (j *StatsRecalculator) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	j.logger.Info("StatsRecalculator: starting duration stats recalculation")

	if err := j.statsRepo.Recalculate(ctx); err != nil {
		j.logger.Error("StatsRecalculator: recalculation failed: %v", err)
		return
	}

	j.logger.Info("StatsRecalculator: recalculation finished in %s", time.Since(start))
}
