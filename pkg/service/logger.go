package service

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Logger is the subset of the logging package interface used by the
// HTTP service and its options.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Log(args ...interface{})
	Logf(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type Log struct {
	Timestamp     time.Time `json:"timestamp"`
	ResponseTime  int64     `json:"latency"`
	CorrelationID string    `json:"correlationId"`
	ResponseCode  int       `json:"responseCode"`
	HTTPMethod    string    `json:"httpMethod"`
	URI           string    `json:"uri"`
}

func (l Log) PrettyPrint(writer io.Writer) {
	fmt.Fprintf(writer, "[38;5;8m%s [38;5;%dm%d[0m %8d[38;5;8mµs[0m %s %s \n",
		l.CorrelationID, colorForStatusCode(l.ResponseCode), l.ResponseCode, l.ResponseTime, l.HTTPMethod, l.URI)
}

type ErrorLog struct {
	Log
	ErrorMessage string `json:"errorMessage"`
}

func (el ErrorLog) PrettyPrint(writer io.Writer) {
	fmt.Fprintf(writer, "[38;5;8m%s [38;5;%dm%d[0m %8d[38;5;8mµs[0m %s %s [38;5;1m%s[0m\n",
		el.CorrelationID, colorForStatusCode(el.ResponseCode), el.ResponseCode, el.ResponseTime, el.HTTPMethod,
		el.URI, el.ErrorMessage)
}

func colorForStatusCode(status int) int {
	const (
		blue   = 34
		red    = 202
		yellow = 220
	)

	switch {
	case status >= 200 && status < 300:
		return blue
	case status >= 400 && status < 500:
		return yellow
	case status >= 500 && status < 600:
		return red
	}

	return 0
}

// Metrics is the metrics registry surface used by the HTTP service.
type Metrics interface {
	NewCounter(name, desc string)
	NewHistogram(name, desc string, buckets ...float64)

	IncrementCounter(ctx context.Context, name string, labels ...string)
	RecordHistogram(ctx context.Context, name string, value float64, labels ...string)
}
