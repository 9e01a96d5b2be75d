package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &m))
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_FieldsAndLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	ctx := context.Background()

	log.Debug(ctx, "d", "a", 1)
	log.Info(ctx, "i", "b", "two")
	log.Warn(ctx, "w", "err", errors.New("boom"))
	log.Error(ctx, "e", "dangling")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)

	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, float64(1), lines[0]["a"])
	assert.Equal(t, "two", lines[1]["b"])
	assert.Equal(t, "boom", lines[2]["err"])
	assert.Equal(t, "dangling", lines[3]["!BADKEY"])
	assert.Equal(t, "e", lines[3]["message"])
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf)).With("module", "cli")
	log.Info(context.Background(), "ready")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "cli", lines[0]["module"])
}

func TestZerologLogger_LevelFiltered(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))
	log.Info(context.Background(), "hidden")
	log.Debug(context.Background(), "hidden")
	assert.Zero(t, buf.Len())
}

func TestNew_SelectsBackend(t *testing.T) {
	var buf bytes.Buffer

	_, ok := New(FormatConsole, "warn", &buf).(*ZerologLogger)
	assert.True(t, ok)

	l := New(FormatJSON, "debug", &buf)
	_, ok = l.(*SlogLogger)
	assert.True(t, ok)
	l.Debug(context.Background(), "visible")
	assert.Contains(t, buf.String(), `"msg":"visible"`)

	buf.Reset()
	New("", "", &buf).Debug(context.Background(), "hidden at info")
	assert.Zero(t, buf.Len())

	buf.Reset()
	New(FormatText, "info", &buf).Info(context.Background(), "plain")
	assert.Contains(t, buf.String(), "msg=plain")
}

func TestNop(t *testing.T) {
	l := Nop().With("a", 1)
	l.Info(context.Background(), "x")
}

func TestZerologLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))
	ctx := ContextWith(context.Background(), "user_id", "u1")

	log.Info(ctx, "served", "code", "OK")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "u1", lines[0]["user_id"])
	assert.Equal(t, "OK", lines[0]["code"])
}
