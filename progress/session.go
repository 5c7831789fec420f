// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/matt-FFFFFF/termfx/internal/signalguard"
	"github.com/matt-FFFFFF/termfx/style"
	"github.com/matt-FFFFFF/termfx/terminal"
	"github.com/matt-FFFFFF/termfx/textutil"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"

	// The remaining-time estimate needs a few seconds of signal before it is
	// worth showing, and is recomputed at most once per second so the
	// per-tick jitter does not make it flicker.
	remainMinElapsed     = 5 * time.Second
	remainRecomputeEvery = time.Second
)

// Stubbed in tests.
var osExit = os.Exit

// Session is a progress indicator bound to one terminal. The zero value is
// not usable; create sessions with New. All operations are safe no-ops
// when the session is not running or the terminal is not interactive.
type Session struct {
	mu    sync.Mutex
	term  terminal.Adapter
	clock Clock

	running bool
	cfg     config

	timeStart        time.Time
	lastRemainCheck  time.Time
	lastRemainString string
	spinFrame        int
	lastLine         string

	task   Task
	guards []*signalguard.Guard
}

// New returns an inert session. A nil terminal means the process's real
// one; a nil clock means the real clock.
func New(term terminal.Adapter, clock Clock) *Session {
	if term == nil {
		term = terminal.OS()
	}

	if clock == nil {
		clock = RealClock()
	}

	return &Session{term: term, clock: clock}
}

// Running reports whether the session is between Start and End.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// Start activates the session: merges opts over defaults, hides the cursor,
// draws the first frame and arms the periodic redraw. It is a no-op when
// the terminal is not interactive or the session is already running.
func (s *Session) Start(opts ...Option) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || !s.term.IsInteractive() {
		return
	}

	cfg := defaultConfig()

	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	cfg.normalize()

	s.cfg = cfg
	s.timeStart = s.clock.Now()
	s.lastRemainCheck = time.Time{}
	s.lastRemainString = ""
	s.spinFrame = 0
	s.lastLine = ""
	s.running = true

	if !cfg.quiet {
		s.term.WriteOut([]byte(hideCursor))
	}

	s.drawLocked()

	s.task = s.clock.Schedule(cfg.freq, s.Draw)

	ctx := context.Background()

	if cfg.catchInt {
		s.guards = append(s.guards, signalguard.Notify(ctx, func(sig os.Signal) {
			s.handleSignal(sig, cfg.exitOnSig)
		}, syscall.SIGINT))
	}

	if cfg.catchTerm {
		s.guards = append(s.guards, signalguard.Notify(ctx, func(sig os.Signal) {
			s.handleSignal(sig, cfg.exitOnSig)
		}, syscall.SIGTERM))
	}
}

// Update sets the progress amount, clamped into [0, max], and redraws for
// immediate feedback.
func (s *Session) Update(amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cfg.amount = clamp(amount, 0, s.cfg.max)
	s.drawLocked()
}

// UpdateOptions merges the given options into the running configuration,
// re-clamps the amount and redraws.
func (s *Session) UpdateOptions(opts ...Option) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	for _, o := range opts {
		if o != nil {
			o(&s.cfg)
		}
	}

	s.cfg.normalize()
	s.drawLocked()
}

// Draw renders the current frame over the previous one. Called by the
// redraw tick and available to hosts that printed their own output (after
// Erase) and want the bar back immediately.
func (s *Session) Draw() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.drawLocked()
}

// Erase overwrites the current line with spaces, leaving the cursor at
// column 0. The previous frame's record is kept so the next Draw can pad
// correctly.
func (s *Session) Erase() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.eraseLocked()
}

// End deactivates the session: erases the line unless erase is false
// (hosts pass false to leave a completed bar visible), cancels the redraw
// tick, releases any signal guards and restores the cursor.
func (s *Session) End(erase bool) {
	s.mu.Lock()

	if !s.running {
		s.mu.Unlock()
		return
	}

	if erase {
		s.eraseLocked()
	}

	quiet := s.cfg.quiet
	task := s.task
	guards := s.guards

	s.task = nil
	s.guards = nil
	s.running = false
	s.cfg = config{}
	s.lastLine = ""
	s.lastRemainString = ""

	if !quiet {
		s.term.WriteOut([]byte(showCursor))
	}

	s.mu.Unlock()

	if task != nil {
		task.Stop()
	}

	for _, g := range guards {
		g.Release()
	}
}

// HandleCrash ends the session when the calling goroutine is panicking,
// restoring the cursor before the panic continues. Intended for deferred
// use at the top of a host's goroutine:
//
//	defer session.HandleCrash()
func (s *Session) HandleCrash() {
	if r := recover(); r != nil {
		s.End(true)
		panic(r)
	}
}

func (s *Session) handleSignal(sig os.Signal, exitOnSig bool) {
	s.End(true)

	if !exitOnSig {
		return
	}

	code := 128
	if sn, ok := sig.(syscall.Signal); ok {
		code += int(sn)
	}

	osExit(code)
}

func (s *Session) drawLocked() {
	line := s.renderLineLocked(s.clock.Now())

	// A shorter frame must fully overwrite the previous longer one.
	padded := line
	if pad := textutil.Width(s.lastLine) - textutil.Width(line); pad > 0 {
		padded += strings.Repeat(" ", pad)
	}

	s.term.WriteOut([]byte(padded + "\r"))
	s.lastLine = line
}

func (s *Session) eraseLocked() {
	if s.lastLine == "" {
		return
	}

	s.term.WriteOut([]byte(strings.Repeat(" ", textutil.Width(s.lastLine)) + "\r"))
}

func (s *Session) renderLineLocked(now time.Time) string {
	cfg := &s.cfg

	sb := strings.Builder{}
	sb.WriteString(cfg.indent)

	glyph := cfg.spinner[s.spinFrame%len(cfg.spinner)]
	s.spinFrame++

	sb.WriteString(style.Render(glyph, cfg.styles[ElementSpinner]...))
	sb.WriteString(" ")
	sb.WriteString(style.Render(cfg.braces[0], cfg.styles[ElementBraces]...))

	// Exact equality, not >=: an amount pinned at max means "complete but
	// not confirmed" and renders in the indeterminate style.
	barStyles := cfg.styles[ElementBar]
	if cfg.amount == cfg.max {
		barStyles = cfg.styles[ElementIndeterminate]
	}

	sb.WriteString(style.Render(renderBar(cfg.amount, cfg.max, cfg.width, cfg.filled, cfg.filling), barStyles...))
	sb.WriteString(style.Render(cfg.braces[1], cfg.styles[ElementBraces]...))

	if cfg.pct {
		ratio := clamp(cfg.amount/cfg.max, 0, 1)
		sb.WriteString(" ")
		sb.WriteString(style.Render(strconv.Itoa(int(ratio*100))+"%", cfg.styles[ElementPct]...))
	}

	if r := s.remainTextLocked(now); r != "" {
		sb.WriteString(" ")
		sb.WriteString(style.Render(r, cfg.styles[ElementRemain]...))
	}

	if cfg.text != "" {
		sb.WriteString(" ")
		sb.WriteString(style.Render(cfg.text, cfg.styles[ElementText]...))
	}

	return sb.String()
}

// renderBar builds the unstyled bar body: floor(ratio*width) full glyphs,
// one partial glyph for a fractional remainder, space padding to width.
func renderBar(amount, max float64, width int, filled string, filling []string) string {
	ratio := clamp(amount/max, 0, 1)
	filledWidth := ratio * float64(width)
	full := int(filledWidth)
	frac := filledWidth - float64(full)

	sb := strings.Builder{}
	sb.WriteString(strings.Repeat(filled, full))

	if frac > 0 && full < width {
		idx := int(frac * float64(len(filling)))
		if idx >= len(filling) {
			idx = len(filling) - 1
		}

		sb.WriteString(filling[idx])
	}

	return textutil.PadRight(sb.String(), width)
}

// remainTextLocked returns the cached remaining-time annotation, refreshing
// it when the throttle allows. Empty when the estimate is suppressed: no
// progress yet, amount at max, or the remain segment disabled.
func (s *Session) remainTextLocked(now time.Time) string {
	cfg := &s.cfg

	if !cfg.remain || cfg.amount <= 0 || cfg.amount == cfg.max {
		return ""
	}

	elapsed := now.Sub(s.timeStart)

	if elapsed >= remainMinElapsed && now.Sub(s.lastRemainCheck) >= remainRecomputeEvery {
		ratio := cfg.amount / cfg.max
		total := time.Duration(float64(elapsed) / ratio)
		s.lastRemainString = formatRemain(total - elapsed)
		s.lastRemainCheck = now
	}

	return s.lastRemainString
}

func formatRemain(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	return d.Round(time.Second).String() + " remaining"
}
