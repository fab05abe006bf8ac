// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2022-present Datadog, Inc.

// Package log provides a pluggable logging facade. By default it forwards to
// [github.com/DataDog/datadog-agent/pkg/util/log]; embedders can swap the
// whole backend at once with [SetBackend], typically to plug in the tracer's
// own logger.
package log

import (
	"fmt"
	"sync"

	ddlog "github.com/DataDog/datadog-agent/pkg/util/log"
)

// Backend is the set of functions a logging backend must provide. The Errorf
// and Criticalf functions return the error they logged, so call sites can
// log and propagate in one statement; %w wrapping is honored.
type Backend struct {
	Trace     func(format string, args ...any)
	Debug     func(format string, args ...any)
	Info      func(format string, args ...any)
	Warn      func(format string, args ...any)
	Errorf    func(format string, args ...any) error
	Criticalf func(format string, args ...any) error
}

var (
	mu      sync.RWMutex
	backend = defaultBackend()
)

// SetBackend replaces the active logging backend. Nil function fields
// silently drop the corresponding level.
func SetBackend(b Backend) {
	mu.Lock()
	backend = b
	mu.Unlock()
}

// Trace logs at trace level.
func Trace(format string, args ...any) {
	if fn := current().Trace; fn != nil {
		fn(format, args...)
	}
}

// Debug logs at debug level.
func Debug(format string, args ...any) {
	if fn := current().Debug; fn != nil {
		fn(format, args...)
	}
}

// Info logs at info level.
func Info(format string, args ...any) {
	if fn := current().Info; fn != nil {
		fn(format, args...)
	}
}

// Warn logs at warn level.
func Warn(format string, args ...any) {
	if fn := current().Warn; fn != nil {
		fn(format, args...)
	}
}

// Errorf logs at error level and returns the formatted error.
func Errorf(format string, args ...any) error {
	if fn := current().Errorf; fn != nil {
		return fn(format, args...)
	}
	return fmt.Errorf(format, args...)
}

// Criticalf logs at critical level and returns the formatted error.
func Criticalf(format string, args ...any) error {
	if fn := current().Criticalf; fn != nil {
		return fn(format, args...)
	}
	return fmt.Errorf(format, args...)
}

func current() Backend {
	mu.RLock()
	defer mu.RUnlock()
	return backend
}

func defaultBackend() Backend {
	return Backend{
		Trace: func(format string, args ...any) { ddlog.Tracef(format, args...) },
		Debug: func(format string, args ...any) { ddlog.Debugf(format, args...) },
		Info:  func(format string, args ...any) { ddlog.Infof(format, args...) },
		Warn:  func(format string, args ...any) { _ = ddlog.Warnf(format, args...) },
		Errorf: func(format string, args ...any) error {
			err := fmt.Errorf(format, args...)
			_ = ddlog.Error(err.Error())
			return err
		},
		Criticalf: func(format string, args ...any) error {
			err := fmt.Errorf(format, args...)
			_ = ddlog.Critical(err.Error())
			return err
		},
	}
}
