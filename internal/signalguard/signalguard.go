// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalguard provides scoped OS signal registration. Notify arms a
// one-shot handler for a set of signals and returns a Guard; releasing the
// guard deregisters the handler deterministically, so tests and short-lived
// sessions never leave process-wide listeners behind.
package signalguard

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"github.com/matt-FFFFFF/termfx/internal/ctxlog"
)

// Guard is an armed signal registration. It owns its channel and watch
// goroutine; Release disarms it and is safe to call more than once.
type Guard struct {
	ch   chan os.Signal
	done chan struct{}
	once sync.Once
}

// Notify registers handler for the given signals and returns the armed
// guard. The handler fires at most once, on the watch goroutine; after it
// fires the guard disarms itself. At least one signal is required.
func Notify(ctx context.Context, handler func(os.Signal), sigs ...os.Signal) *Guard {
	g := &Guard{
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
	}

	ctxlog.Debug(ctx, "signalguard", "detail", "arming handler", "signals", sigs)
	signal.Notify(g.ch, sigs...)

	go g.watch(ctx, handler)

	return g
}

func (g *Guard) watch(ctx context.Context, handler func(os.Signal)) {
	select {
	case sig := <-g.ch:
		ctxlog.Debug(ctx, "signalguard", "detail", "signal received", "signal", sig.String())
		g.Release()
		handler(sig)
	case <-g.done:
	}
}

// Release deregisters the guard's signals and stops its watch goroutine.
// Idempotent.
func (g *Guard) Release() {
	g.once.Do(func() {
		signal.Stop(g.ch)
		close(g.done)
	})
}
