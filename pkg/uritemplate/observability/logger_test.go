package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures log records as JSON lines.
type testHandler struct {
	buf   *bytes.Buffer
	level slog.Level
	attrs []slog.Attr
}

func newTestHandler() *testHandler {
	return &testHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	for _, attr := range h.attrs {
		data[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	return json.NewEncoder(h.buf).Encode(data)
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := &testHandler{
		buf:   h.buf,
		level: h.level,
		attrs: make([]slog.Attr, len(h.attrs)+len(attrs)),
	}
	copy(newH.attrs, h.attrs)
	copy(newH.attrs[len(h.attrs):], attrs)
	return newH
}

func (h *testHandler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *testHandler) lastRecord() map[string]any {
	lines := bytes.Split(h.buf.Bytes(), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if len(lines[i]) == 0 {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(lines[i], &m); err == nil {
			return m
		}
	}
	return nil
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds relation", func(t *testing.T) {
		h := newTestHandler()
		enriched := EnrichLogger(slog.New(h), "self")
		enriched.Info("building")

		record := h.lastRecord()
		require.NotNil(t, record)
		assert.Equal(t, "self", record["relation"])
		assert.Equal(t, "building", record["msg"])
	})

	t.Run("nil logger returns nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "self"))
	})
}

func TestLogTemplateRegistered(t *testing.T) {
	h := newTestHandler()
	LogTemplateRegistered(slog.New(h), "item", "product/{id}")

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "template registered", record["msg"])
	assert.Equal(t, "item", record["relation"])
	assert.Equal(t, "product/{id}", record["template"])

	assert.NotPanics(t, func() {
		LogTemplateRegistered(nil, "item", "product/{id}")
	})
}

func TestLogTemplateError(t *testing.T) {
	h := newTestHandler()
	LogTemplateError(slog.New(h), "item", "product/{id", errors.New("unterminated"))

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "template rejected", record["msg"])
	assert.Equal(t, "unterminated", record["error"])

	assert.NotPanics(t, func() {
		LogTemplateError(nil, "item", "", errors.New("x"))
	})
}

func TestLogExpansion(t *testing.T) {
	h := newTestHandler()
	LogExpansion(slog.New(h), "item", 3, 1.5)

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "link expanded", record["msg"])
	assert.Equal(t, float64(3), record["links"]) // JSON decodes ints as float64
	assert.Equal(t, 1.5, record["duration_ms"])

	assert.NotPanics(t, func() {
		LogExpansion(nil, "item", 0, 0)
	})
}

func TestLogExpansionError(t *testing.T) {
	h := newTestHandler()
	LogExpansionError(slog.New(h), "item", errors.New("binding type mismatch"))

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "binding type mismatch", record["error"])

	assert.NotPanics(t, func() {
		LogExpansionError(nil, "item", errors.New("x"))
	})
}

func TestLogUnbound(t *testing.T) {
	h := newTestHandler()
	LogUnbound(slog.New(h), "id", "{id*}")

	record := h.lastRecord()
	require.NotNil(t, record)
	assert.Equal(t, "variable unbound, placeholder kept", record["msg"])
	assert.Equal(t, "id", record["variable"])
	assert.Equal(t, "{id*}", record["placeholder"])

	assert.NotPanics(t, func() {
		LogUnbound(nil, "id", "{id}")
	})
}
