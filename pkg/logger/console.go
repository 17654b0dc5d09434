package logger

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/fatih/color"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

var levelColors = struct {
	debug, info, warn, error *color.Color
}{
	debug: forced(color.New(color.FgBlue)),
	info:  forced(color.New(color.FgGreen)),
	warn:  forced(color.New(color.FgYellow)),
	error: forced(color.New(color.FgRed, color.Bold)),
}

// forced enables c even when stdout is not a terminal; Colorize is an
// explicit request.
func forced(c *color.Color) *color.Color {
	c.EnableColor()
	return c
}

// consoleHandler writes human-readable lines:
//
//	2026-10-14T09:30:00.000Z - info: Starting beholder component id=0
//
// The level label is colorized when requested and the timestamp prefix is
// omitted when timestamps are disabled.
type consoleHandler struct {
	mu        *sync.Mutex
	out       io.Writer
	level     slog.Leveler
	colorize  bool
	timestamp bool
	attrs     []byte
	groups    []string
}

func newConsoleHandler(out io.Writer, level slog.Leveler, colorize, timestamp bool) *consoleHandler {
	return &consoleHandler{
		mu:        &sync.Mutex{},
		out:       out,
		level:     level,
		colorize:  colorize,
		timestamp: timestamp,
	}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 256)
	if h.timestamp && !r.Time.IsZero() {
		buf = r.Time.AppendFormat(buf, consoleTimeFormat)
		buf = append(buf, " - "...)
	}
	buf = append(buf, h.levelLabel(r.Level)...)
	buf = append(buf, ": "...)
	buf = append(buf, r.Message...)
	buf = append(buf, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.groups, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	c := h.clone()
	for _, a := range attrs {
		c.attrs = appendAttr(c.attrs, c.groups, a)
	}
	return c
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.groups = append(c.groups, name)
	return c
}

func (h *consoleHandler) clone() *consoleHandler {
	c := *h
	c.attrs = append([]byte(nil), h.attrs...)
	c.groups = append([]string(nil), h.groups...)
	return &c
}

func (h *consoleHandler) levelLabel(level slog.Level) string {
	label := strings.ToLower(level.String())
	if !h.colorize {
		return label
	}
	switch {
	case level >= slog.LevelError:
		return levelColors.error.Sprint(label)
	case level >= slog.LevelWarn:
		return levelColors.warn.Sprint(label)
	case level >= slog.LevelInfo:
		return levelColors.info.Sprint(label)
	default:
		return levelColors.debug.Sprint(label)
	}
}

func appendAttr(buf []byte, groups []string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		members := a.Value.Group()
		if len(members) == 0 {
			return buf
		}
		prefix := groups
		if a.Key != "" {
			prefix = append(append([]string(nil), groups...), a.Key)
		}
		for _, m := range members {
			buf = appendAttr(buf, prefix, m)
		}
		return buf
	}
	if a.Key == "" {
		return buf
	}

	buf = append(buf, ' ')
	for _, g := range groups {
		buf = append(buf, g...)
		buf = append(buf, '.')
	}
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	return appendValue(buf, a.Value)
}

func appendValue(buf []byte, v slog.Value) []byte {
	var s string
	switch v.Kind() {
	case slog.KindTime:
		s = v.Time().Format(time.RFC3339Nano)
	default:
		s = v.String()
	}
	if needsQuoting(s) {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if unicode.IsSpace(r) || r == '"' || r == '=' || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}
