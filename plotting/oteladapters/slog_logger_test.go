package oteladapters_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/embedded"

	"github.com/OhadNir9/eddington/plotting"
	"github.com/OhadNir9/eddington/plotting/oteladapters"
)

// capturingHandler records all slog records for assertions.
type capturingHandler struct {
	mu      sync.Mutex
	records []capturedRecord
}

type capturedRecord struct {
	level slog.Level
	msg   string
	attrs map[string]any
}

func (h *capturingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *capturingHandler) Handle(_ context.Context, record slog.Record) error {
	attrs := make(map[string]any)
	record.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, capturedRecord{level: record.Level, msg: record.Message, attrs: attrs})

	return nil
}

func (h *capturingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *capturingHandler) WithGroup(_ string) slog.Handler      { return h }

func (h *capturingHandler) getRecords() []capturedRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]capturedRecord, len(h.records))
	copy(result, h.records)

	return result
}

func Test_SlogLogger_ImplementsLoggerInterface(t *testing.T) {
	var _ plotting.Logger = oteladapters.NewSlogLogger("test")
	var _ plotting.Logger = oteladapters.NewSlogLoggerWithHandler(&capturingHandler{})
}

func Test_SlogLogger_LogsAtAllLevels(t *testing.T) {
	handler := &capturingHandler{}
	logger := oteladapters.NewSlogLoggerWithHandler(handler)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	records := handler.getRecords()
	require.Len(t, records, 4, "Expected one record per level")

	assert.Equal(t, slog.LevelDebug, records[0].level)
	assert.Equal(t, "debug message", records[0].msg)
	assert.Equal(t, slog.LevelInfo, records[1].level)
	assert.Equal(t, "info message", records[1].msg)
	assert.Equal(t, slog.LevelWarn, records[2].level)
	assert.Equal(t, "warn message", records[2].msg)
	assert.Equal(t, slog.LevelError, records[3].level)
	assert.Equal(t, "error message", records[3].msg)
}

func Test_SlogLogger_PassesKeyValueArgs(t *testing.T) {
	handler := &capturingHandler{}
	logger := oteladapters.NewSlogLoggerWithHandler(handler)

	logger.Info("plot drawn", "function", "linear", "series", 2)

	records := handler.getRecords()
	require.Len(t, records, 1)

	assert.Equal(t, "linear", records[0].attrs["function"])
	assert.Equal(t, int64(2), records[0].attrs["series"])
}

// recordingOTelLogger is a log.Logger that captures emitted records.
type recordingOTelLogger struct {
	embedded.Logger
	mu      sync.Mutex
	records []log.Record
}

func (l *recordingOTelLogger) Emit(_ context.Context, record log.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, record)
}

func (l *recordingOTelLogger) Enabled(context.Context, log.EnabledParameters) bool {
	return true
}

func (l *recordingOTelLogger) getRecords() []log.Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make([]log.Record, len(l.records))
	copy(result, l.records)

	return result
}

func attributesOf(record log.Record) map[string]string {
	attrs := make(map[string]string)
	record.WalkAttributes(func(kv log.KeyValue) bool {
		attrs[kv.Key] = kv.Value.AsString()
		return true
	})

	return attrs
}

func Test_OTelLogger_SeverityMapping(t *testing.T) {
	tests := []struct {
		name             string
		logCall          func(logger *oteladapters.OTelLogger)
		expectedSeverity log.Severity
		expectedBody     string
	}{
		{
			name:             "debug",
			logCall:          func(logger *oteladapters.OTelLogger) { logger.Debug("debug message") },
			expectedSeverity: log.SeverityDebug,
			expectedBody:     "debug message",
		},
		{
			name:             "info",
			logCall:          func(logger *oteladapters.OTelLogger) { logger.Info("info message") },
			expectedSeverity: log.SeverityInfo,
			expectedBody:     "info message",
		},
		{
			name:             "warn",
			logCall:          func(logger *oteladapters.OTelLogger) { logger.Warn("warn message") },
			expectedSeverity: log.SeverityWarn,
			expectedBody:     "warn message",
		},
		{
			name:             "error",
			logCall:          func(logger *oteladapters.OTelLogger) { logger.Error("error message") },
			expectedSeverity: log.SeverityError,
			expectedBody:     "error message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &recordingOTelLogger{}
			logger := oteladapters.NewOTelLogger(recorder)

			tt.logCall(logger)

			records := recorder.getRecords()
			require.Len(t, records, 1)
			assert.Equal(t, tt.expectedSeverity, records[0].Severity())
			assert.Equal(t, tt.expectedBody, records[0].Body().AsString())
		})
	}
}

func Test_OTelLogger_PairsKeyValueArgs(t *testing.T) {
	recorder := &recordingOTelLogger{}
	logger := oteladapters.NewOTelLogger(recorder)

	logger.Info("plot drawn", "function", "linear", "series", 2)

	records := recorder.getRecords()
	require.Len(t, records, 1)

	attrs := attributesOf(records[0])
	assert.Equal(t, "linear", attrs["function"])
	assert.Equal(t, "2", attrs["series"])
}

func Test_OTelLogger_SkipsMalformedArgs(t *testing.T) {
	recorder := &recordingOTelLogger{}
	logger := oteladapters.NewOTelLogger(recorder)

	// A dangling key without a value and a non-string key must both be dropped.
	logger.Info("partial args", "valid", "pair", "dangling")
	logger.Info("numeric key", 42, "ignored")

	records := recorder.getRecords()
	require.Len(t, records, 2)

	assert.Equal(t, map[string]string{"valid": "pair"}, attributesOf(records[0]))
	assert.Empty(t, attributesOf(records[1]))
}

func Test_OTelLogger_ImplementsLoggerInterface(t *testing.T) {
	var _ plotting.Logger = oteladapters.NewOTelLogger(&recordingOTelLogger{})
}

func Test_SlogLogger_WorksAsPlotterDependency(t *testing.T) {
	handler := &capturingHandler{}
	logger := oteladapters.NewSlogLoggerWithHandler(handler)

	_, err := plotting.New(nil, plotting.WithLogger(logger))

	// The factory is required, but the option itself must apply cleanly.
	assert.Error(t, err)
}
