// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/matt-FFFFFF/termfx/style"
)

// TimeFormat is the format used for timestamps in log messages.
const TimeFormat = "[15:04:05.000]"

// Pretty is a slog handler that writes single-line, colorized log records.
// Level badges are colorized through the style package so they honor
// NO_COLOR/FORCE_COLOR like every other piece of toolkit output.
type Pretty struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPretty returns a Pretty handler writing to w at the given level.
func NewPretty(w io.Writer, level slog.Leveler) *Pretty {
	return &Pretty{
		mu:    &sync.Mutex{},
		w:     w,
		level: level,
	}
}

// Enabled implements slog.Handler.
func (p *Pretty) Enabled(_ context.Context, level slog.Level) bool {
	return level >= p.level.Level()
}

// WithAttrs implements slog.Handler.
func (p *Pretty) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *p
	clone.attrs = append(append([]slog.Attr{}, p.attrs...), attrs...)

	return &clone
}

// WithGroup implements slog.Handler.
func (p *Pretty) WithGroup(name string) slog.Handler {
	clone := *p
	if clone.group != "" {
		name = clone.group + "." + name
	}

	clone.group = name

	return &clone
}

// Handle implements slog.Handler.
func (p *Pretty) Handle(_ context.Context, r slog.Record) error {
	out := strings.Builder{}

	out.WriteString(style.Render(r.Time.Format(TimeFormat), style.MustNamed("faint")))
	out.WriteString(" ")
	out.WriteString(levelBadge(r.Level))
	out.WriteString(" ")
	out.WriteString(style.Render(r.Message, style.MustNamed("brightWhite")))

	for _, a := range p.attrs {
		p.writeAttr(&out, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		p.writeAttr(&out, a)
		return true
	})

	out.WriteString("\n")

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := io.WriteString(p.w, out.String()); err != nil {
		return fmt.Errorf("ctxlog: writing record: %w", err)
	}

	return nil
}

func (p *Pretty) writeAttr(out *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if p.group != "" {
		key = p.group + "." + key
	}

	out.WriteString(" ")
	out.WriteString(style.Render(key+"=", style.MustNamed("faint")))
	out.WriteString(a.Value.String())
}

func levelBadge(level slog.Level) string {
	badge := level.String() + ":"

	switch {
	case level <= slog.LevelDebug:
		return style.Render(badge, style.MustNamed("white"))
	case level <= slog.LevelInfo:
		return style.Render(badge, style.MustNamed("cyan"))
	case level < slog.LevelError:
		return style.Render(badge, style.MustNamed("yellow"))
	default:
		return style.Render(badge, style.MustNamed("red"))
	}
}
