package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeStatsRepo struct {
	calls int
	err   error
	ctx   context.Context
}

func (f *fakeStatsRepo) Recalculate(ctx context.Context) error {
	f.calls++
	f.ctx = ctx
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, args ...interface{})  {}
func (nopLogger) Error(format string, args ...interface{}) {}

func TestStatsRecalculator_Run(t *testing.T) {
	repo := &fakeStatsRepo{}
	job := NewStatsRecalculator(repo, nopLogger{})

	job.Run()

	assert.Equal(t, 1, repo.calls)

	deadline, ok := repo.ctx.Deadline()
	assert.True(t, ok)
	assert.False(t, deadline.IsZero())
}

func TestStatsRecalculator_RunSwallowsError(t *testing.T) {
	repo := &fakeStatsRepo{err: errors.New("db down")}
	job := NewStatsRecalculator(repo, nopLogger{})

	assert.NotPanics(t, job.Run)
	assert.Equal(t, 1, repo.calls)
}
