// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalguard

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestHandlerFiresOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	fired := make(chan os.Signal, 2)
	g := Notify(context.Background(), func(sig os.Signal) {
		fired <- sig
	}, syscall.SIGINT)

	g.ch <- syscall.SIGINT

	select {
	case sig := <-fired:
		assert.Equal(t, syscall.SIGINT, sig)
	case <-time.After(time.Second):
		t.Fatal("handler did not fire")
	}

	// The guard disarmed itself; a second delivery must not invoke the handler.
	select {
	case g.ch <- syscall.SIGINT:
	default:
	}

	select {
	case <-fired:
		t.Fatal("handler fired twice")
	case <-time.After(50 * time.Millisecond):
	}

	g.Release()
}

func TestReleaseStopsWatcher(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := Notify(context.Background(), func(os.Signal) {
		t.Error("handler must not fire after release")
	}, syscall.SIGTERM)

	g.Release()

	// The watch goroutine has exited; a buffered delivery goes nowhere.
	g.ch <- syscall.SIGTERM
	time.Sleep(50 * time.Millisecond)
}

func TestReleaseIsIdempotent(t *testing.T) {
	g := Notify(context.Background(), func(os.Signal) {}, syscall.SIGINT)

	require.NotPanics(t, func() {
		g.Release()
		g.Release()
		g.Release()
	})
}
