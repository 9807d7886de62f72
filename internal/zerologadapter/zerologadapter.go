/*
Package zerologadapter implements tracing with rs/zerolog.

Tracers are installed globally, usually at program start:

	tracing.SetTraceSelector(tracing.SelectorForAdapter(zerologadapter.GetAdapter(os.Stderr, true)))

Key/value pairs given with P become fields of the log event.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package zerologadapter

import (
	"fmt"
	"io"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rs/zerolog"
)

// Tracer is our adapter implementation which implements interface
// tracing.Trace, using a zerolog logger.
type Tracer struct {
	log   zerolog.Logger
	level tracing.TraceLevel
	human bool
}

// New creates a new Tracer writing to w. If human is set, output is
// formatted for the console, otherwise as JSON lines.
func New(w io.Writer, human bool) *Tracer {
	t := &Tracer{level: tracing.LevelError, human: human}
	t.log = zerolog.New(t.writer(w)).With().Timestamp().Logger()
	return t
}

// GetAdapter creates an adapter (i.e., factory for tracing.Trace) to
// be used to initialize (global) tracers.
func GetAdapter(w io.Writer, human bool) tracing.Adapter {
	return func() tracing.Trace {
		return New(w, human)
	}
}

func (t *Tracer) writer(w io.Writer) io.Writer {
	if !t.human {
		return w
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
}

// P is part of interface Trace
func (t *Tracer) P(key string, val interface{}) tracing.Trace {
	return &entry{root: t, ctx: t.log.With().Interface(key, val)}
}

// Debugf is part of interface Trace
func (t *Tracer) Debugf(s string, args ...interface{}) {
	t.emit(t.log, tracing.LevelDebug, s, args...)
}

// Infof is part of interface Trace
func (t *Tracer) Infof(s string, args ...interface{}) {
	t.emit(t.log, tracing.LevelInfo, s, args...)
}

// Errorf is part of interface Trace
func (t *Tracer) Errorf(s string, args ...interface{}) {
	t.emit(t.log, tracing.LevelError, s, args...)
}

// SetTraceLevel is part of interface Trace
func (t *Tracer) SetTraceLevel(l tracing.TraceLevel) {
	t.level = l
}

// GetTraceLevel is part of interface Trace
func (t *Tracer) GetTraceLevel() tracing.TraceLevel {
	return t.level
}

// SetOutput is part of interface Trace
func (t *Tracer) SetOutput(writer io.Writer) {
	t.log = t.log.Output(t.writer(writer))
}

func (t *Tracer) emit(log zerolog.Logger, l tracing.TraceLevel, s string, args ...interface{}) {
	if t.level < l {
		return
	}
	var e *zerolog.Event
	switch l {
	case tracing.LevelDebug:
		e = log.Debug()
	case tracing.LevelInfo:
		e = log.Info()
	default:
		e = log.Error()
	}
	e.Msg(fmt.Sprintf(s, args...))
}

// ----------------------------------------------------------------------------

// entry carries fields for a single trace call
type entry struct {
	root *Tracer
	ctx  zerolog.Context
}

func (e *entry) Debugf(s string, args ...interface{}) {
	e.root.emit(e.ctx.Logger(), tracing.LevelDebug, s, args...)
}

func (e *entry) Infof(s string, args ...interface{}) {
	e.root.emit(e.ctx.Logger(), tracing.LevelInfo, s, args...)
}

func (e *entry) Errorf(s string, args ...interface{}) {
	e.root.emit(e.ctx.Logger(), tracing.LevelError, s, args...)
}

func (e *entry) P(key string, val interface{}) tracing.Trace {
	return &entry{root: e.root, ctx: e.ctx.Interface(key, val)}
}

func (e *entry) SetTraceLevel(tracing.TraceLevel)  {}
func (e *entry) GetTraceLevel() tracing.TraceLevel { return e.root.GetTraceLevel() }
func (e *entry) SetOutput(io.Writer)               {}

var _ tracing.Trace = &Tracer{}
var _ tracing.Trace = &entry{}
