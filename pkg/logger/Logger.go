// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package logger writes structured log messages, one per line, as json, yaml or tags.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Logger writes debug and info messages to the info writer, and warnings and errors to the error writer.
type Logger struct {
	mutex       *sync.Mutex
	infoWriter  *Writer
	infoFormat  string
	errorWriter *Writer
	errorFormat string
	verbose     bool
}

func New(infoWriter *Writer, infoFormat string, errorWriter *Writer, errorFormat string, verbose bool) *Logger {
	return &Logger{
		mutex:       &sync.Mutex{},
		infoWriter:  infoWriter,
		infoFormat:  infoFormat,
		errorWriter: errorWriter,
		errorFormat: errorFormat,
		verbose:     verbose,
	}
}

func message(level string, obj interface{}) map[string]interface{} {
	switch o := obj.(type) {
	case error:
		return map[string]interface{}{"level": level, "error": strings.Replace(o.Error(), "\n", ": ", -1)}
	case string:
		return map[string]interface{}{"level": level, "message": o}
	case map[string]string:
		m := make(map[string]interface{}, len(o)+1)
		for k, v := range o {
			m[k] = v
		}
		m["level"] = level
		return m
	case map[string]interface{}:
		m := make(map[string]interface{}, len(o)+1)
		for k, v := range o {
			m[k] = v
		}
		m["level"] = level
		return m
	}
	return map[string]interface{}{"level": level, "message": obj}
}

func (l *Logger) write(w *Writer, format string, level string, obj interface{}) {
	line, err := Format(message(level, obj), format)
	if err != nil {
		line, _ = Format(message(LevelError, err), DefaultFormat)
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	w.WriteLine(line) // #nosec
}

// Debug writes the message to the info writer if the logger is verbose.
func (l *Logger) Debug(obj interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.infoWriter, l.infoFormat, LevelDebug, obj)
}

func (l *Logger) Info(obj interface{}) {
	l.write(l.infoWriter, l.infoFormat, LevelInfo, obj)
}

func (l *Logger) InfoF(format string, a ...interface{}) {
	l.Info(fmt.Sprintf(format, a...))
}

func (l *Logger) Warn(obj interface{}) {
	l.write(l.errorWriter, l.errorFormat, LevelWarn, obj)
}

func (l *Logger) Error(obj interface{}) {
	l.write(l.errorWriter, l.errorFormat, LevelError, obj)
}

// Fatal writes the error, closes the writers, and exits with status 1.
func (l *Logger) Fatal(obj interface{}) {
	l.Error(obj)
	l.Close()
	os.Exit(1)
}

func (l *Logger) Flush() {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.infoWriter.Flush()  // #nosec
	l.errorWriter.Flush() // #nosec
}

func (l *Logger) Close() {
	l.Flush()
	l.infoWriter.Close()  // #nosec
	l.errorWriter.Close() // #nosec
}

// ListenInfo logs every message received on the channel until it is closed.
func (l *Logger) ListenInfo(messages chan interface{}, wg *sync.WaitGroup) {
	go func(messages chan interface{}) {
		for message := range messages {
			l.Info(message)
			l.Flush()
		}
		if wg != nil {
			wg.Done()
		}
	}(messages)
}

func (l *Logger) ListenError(messages chan interface{}, wg *sync.WaitGroup) {
	go func(messages chan interface{}) {
		for message := range messages {
			l.Error(message)
			l.Flush()
		}
		if wg != nil {
			wg.Done()
		}
	}(messages)
}
