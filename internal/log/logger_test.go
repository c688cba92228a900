package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(component string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(Config{
		Component: component,
		Handler:   slog.NewTextHandler(&buf, nil),
	}), &buf
}

func TestLoggerStampsComponent(t *testing.T) {
	logger, buf := newBufferLogger(ComponentApp)
	logger.Info("server started", "port", "8081")

	line := buf.String()
	if !strings.Contains(line, "component=app") {
		t.Errorf("log line missing component: %q", line)
	}
	if !strings.Contains(line, "port=8081") {
		t.Errorf("log line missing attribute: %q", line)
	}
}

func TestWithComponent(t *testing.T) {
	logger, buf := newBufferLogger(ComponentApp)
	child := logger.WithComponent(ComponentWorker)

	if child.Component() != ComponentWorker {
		t.Errorf("Component() = %q", child.Component())
	}
	child.Warn("queue slow")
	if !strings.Contains(buf.String(), "component=worker") {
		t.Errorf("log line missing child component: %q", buf.String())
	}
}

func TestWithKeepsComponent(t *testing.T) {
	logger, buf := newBufferLogger(ComponentApp)
	logger.With("request_id", "req_1").Error("boom")

	line := buf.String()
	if !strings.Contains(line, "request_id=req_1") || !strings.Contains(line, "component=app") {
		t.Errorf("log line = %q", line)
	}
}
