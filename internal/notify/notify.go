// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"strings"

	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/models"
)

// Severity is the alert category.
type Severity string

const (
	Success Severity = "success"
	Info    Severity = "info"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// DefaultHeader returns the header shown when a notification has none.
func (s Severity) DefaultHeader() string {
	switch s {
	case Success:
		return "Success"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return ""
	}
}

// Notification is one alert.
type Notification struct {
	Severity Severity
	Body     string
	Header   string
}

// Title returns Header, falling back to the severity default.
func (n Notification) Title() string {
	if n.Header != "" {
		return n.Header
	}
	return n.Severity.DefaultHeader()
}

// Sink displays notifications. Implementations must not block the caller.
type Sink interface {
	Notify(n Notification)
}

// SinkFunc adapts a function to [Sink].
type SinkFunc func(n Notification)

// Notify implements [Sink].
func (f SinkFunc) Notify(n Notification) { f(n) }

// Send is a shorthand for sink.Notify with a severity and body.
func Send(sink Sink, severity Severity, body string) {
	if sink == nil {
		return
	}
	sink.Notify(Notification{Severity: severity, Body: body})
}

// FormatErrorDetail renders header followed by the server error detail as a
// nested list. A field with one message becomes one bullet; a field with
// several messages becomes a bullet holding a nested list.
func FormatErrorDetail(header string, detail models.ErrorDetail) string {
	var b strings.Builder
	b.WriteString(header)

	if len(detail.Fields) == 0 {
		b.WriteString("\n  • ")
		b.WriteString(detail.Message)
		return b.String()
	}

	for _, field := range detail.Fields {
		if len(field.Messages) == 1 {
			b.WriteString("\n  • ")
			b.WriteString(field.Messages[0])
			continue
		}
		b.WriteString("\n  •")
		for _, msg := range field.Messages {
			b.WriteString("\n      ◦ ")
			b.WriteString(msg)
		}
	}
	return b.String()
}

type logSink struct {
	logger *logger.Logger
}

// NewLogSink returns a [Sink] that writes every notification to log.
func NewLogSink(log *logger.Logger) Sink {
	return &logSink{logger: log}
}

func (l *logSink) Notify(n Notification) {
	event := l.logger.Info()
	switch n.Severity {
	case Warning:
		event = l.logger.Warn()
	case Error:
		event = l.logger.Error()
	}
	event.
		Str("severity", string(n.Severity)).
		Str("header", n.Title()).
		Msg(n.Body)
}

// Multi fans a notification out to every sink in order.
type Multi []Sink

// Notify implements [Sink].
func (m Multi) Notify(n Notification) {
	for _, sink := range m {
		if sink != nil {
			sink.Notify(n)
		}
	}
}
