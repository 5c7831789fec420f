// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"sync"
	"time"
)

// Task is a scheduled periodic callback. Stop cancels it; Stop is
// idempotent and does not wait for an in-flight invocation to return.
type Task interface {
	Stop()
}

// Clock abstracts time for the session: reading the current instant and
// scheduling the redraw tick. Tests substitute a virtual clock to drive
// ticks and the ETA throttle deterministically.
type Clock interface {
	Now() time.Time
	Schedule(every time.Duration, fn func()) Task
}

type realClock struct{}

// RealClock returns the Clock backed by time.Now and time.Ticker.
func RealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Schedule(every time.Duration, fn func()) Task {
	t := &realTask{
		ticker: time.NewTicker(every),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-t.ticker.C:
				fn()
			case <-t.done:
				return
			}
		}
	}()

	return t
}

type realTask struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *realTask) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
