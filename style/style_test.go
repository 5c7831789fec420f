// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsColorCapable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, isColorCapable(), "Expected color output to be disabled")

	t.Setenv("FORCE_COLOR", "1")
	assert.False(t, isColorCapable(), "Expected color output to be disabled as NO_COLOR is still set")

	t.Setenv("NO_COLOR", "")
	assert.True(t, isColorCapable(), "Expected color output to be enabled as FORCE_COLOR is set and NO_COLOR is unset")
}

func TestNamedApply(t *testing.T) {
	SetEnabled(true)
	t.Cleanup(func() { enabled.Store(isColorCapable()) })

	bold, err := Named("bold")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1mhi\x1b[0m", bold.Apply("hi"))

	red, err := Named("red")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31mhi\x1b[0m", red.Apply("hi"))
}

func TestNamedApplyDisabled(t *testing.T) {
	SetEnabled(false)
	t.Cleanup(func() { enabled.Store(isColorCapable()) })

	bold := MustNamed("bold")
	assert.Equal(t, "hi", bold.Apply("hi"), "disabled named styles pass text through")
}

func TestNamedUnknown(t *testing.T) {
	_, err := Named("sparkly")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sparkly")
}

func TestMustNamedPanics(t *testing.T) {
	assert.Panics(t, func() { MustNamed("sparkly") })
}

func TestFuncApply(t *testing.T) {
	upper := Func(strings.ToUpper)
	assert.Equal(t, "HI", upper.Apply("hi"))
}

func TestRenderOrder(t *testing.T) {
	a := Func(func(s string) string { return "<" + s + ">" })
	b := Func(func(s string) string { return "[" + s + "]" })

	assert.Equal(t, "[<x>]", Render("x", a, b), "entries apply left-to-right, each wrapping the previous")
	assert.Equal(t, "x", Render("x"))
	assert.Equal(t, "<x>", Render("x", nil, a), "nil entries are skipped")
}

func TestControlString(t *testing.T) {
	assert.Equal(t, "\x1b[1m", ControlString(Bold))
	assert.Equal(t, "\x1b[1;31m", ControlString(Bold, FgRed))
}
