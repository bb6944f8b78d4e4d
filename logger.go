/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ipfix

import (
	"context"
	"sync"

	"github.com/go-logr/logr"
)

// Log is the package-level logger used by the codec; MessageBuffer logs
// template additions and withdrawals through it at V(1), and no other
// operation writes to it. It is a no-op sink
// until SetLogger is called, following the delegating-sink pattern used by
// controller-runtime.
var (
	logMu  sync.RWMutex
	logger = logr.New(nullLogSink{})

	Log = delegatingLogger{}
)

// SetLogger installs l as the sink for all of the package's logging calls.
// Call it once, early, before using the codec concurrently.
func SetLogger(l logr.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = l
}

// FromContext returns the logger attached to ctx via IntoContext, or the
// package logger if ctx carries none.
func FromContext(ctx context.Context, keysAndValues ...interface{}) logr.Logger {
	if ctx != nil {
		if l, err := logr.FromContext(ctx); err == nil {
			return l.WithValues(keysAndValues...)
		}
	}
	return Log.get().WithValues(keysAndValues...)
}

// IntoContext attaches l to ctx for later retrieval with FromContext.
func IntoContext(ctx context.Context, l logr.Logger) context.Context {
	return logr.NewContext(ctx, l)
}

// delegatingLogger resolves to whatever logger is currently installed via
// SetLogger at the time of each call, so packages may hold a reference to
// Log before SetLogger runs.
type delegatingLogger struct{}

func (delegatingLogger) get() logr.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

func (d delegatingLogger) Info(msg string, keysAndValues ...interface{}) {
	d.get().Info(msg, keysAndValues...)
}

func (d delegatingLogger) V(level int) logr.Logger {
	return d.get().V(level)
}

func (d delegatingLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	d.get().Error(err, msg, keysAndValues...)
}

func (d delegatingLogger) WithValues(keysAndValues ...interface{}) logr.Logger {
	return d.get().WithValues(keysAndValues...)
}

type nullLogSink struct{}

var _ logr.LogSink = nullLogSink{}

func (nullLogSink) Init(logr.RuntimeInfo)                            {}
func (nullLogSink) Enabled(int) bool                                 { return false }
func (nullLogSink) Info(int, string, ...interface{})                 {}
func (nullLogSink) Error(error, string, ...interface{})              {}
func (l nullLogSink) WithName(string) logr.LogSink                   { return l }
func (l nullLogSink) WithValues(...interface{}) logr.LogSink         { return l }
