package base

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingCallable struct {
	name  string
	order *[]string
	err   error
}

func (r *recordingCallable) Invoke(_ context.Context) error {
	*r.order = append(*r.order, r.name)
	return r.err
}

func TestCleanerRunsInReverseOrder(t *testing.T) {
	logger := NewLoggerWithOutput(&bytes.Buffer{})
	logger.Init(false)
	cleaner := NewCleaner(logger)
	exitCode := -1
	cleaner.exit = func(code int) { exitCode = code }

	order := make([]string, 0, 3)
	cleaner.Add(&recordingCallable{name: "database", order: &order})
	cleaner.Add(&recordingCallable{name: "http", order: &order, err: errors.New("boom")})
	cleaner.Add(&recordingCallable{name: "limiter", order: &order})

	cleaner.Clean()

	assert.Equal(t, []string{"limiter", "http", "database"}, order)
	assert.Equal(t, 0, exitCode)

	cleaner.Add(&recordingCallable{name: "late", order: &order})
	assert.Empty(t, cleaner.runCallbacks())
	assert.Len(t, order, 3)
}
