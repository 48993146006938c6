// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// countingWorker is a test implementation of the Worker interface that
// tracks how many times Run was called and waits for cancellation.
type countingWorker struct {
	runCount atomic.Int32
}

func (m *countingWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not block or panic on an empty workers list
	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	assert.NoError(t, ws.Run(context.Background()))
}

// TestWorkers_Run_FirstErrorCancelsOthers verifies that a failing worker stops
// the remaining workers and its error is returned.
func TestWorkers_Run_FirstErrorCancelsOthers(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	errBoom := errors.New("boom")
	blocking := &countingWorker{}
	failing := WorkerFunc(func(context.Context) error { return errBoom })

	err := NewWorkers(blocking, failing).Run(context.Background())
	assert.ErrorIs(t, err, errBoom)
}

func TestWorkers_Add(t *testing.T) {
	ws := NewWorkers()
	ws.Add(&countingWorker{})
	ws.Add(WorkerFunc(func(context.Context) error { return nil }))

	assert.Equal(t, 2, ws.Len())
}
