package zerologadapter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l == "" {
			continue
		}
		var e map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(l), &e), "line %q", l)
		entries = append(entries, e)
	}
	return entries
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf, false)
	assert.Equal(t, tracing.LevelError, tr.GetTraceLevel())
	tr.Debugf("hidden")
	tr.Infof("hidden")
	tr.Errorf("failed: %d", 42)
	tr.SetTraceLevel(tracing.LevelDebug)
	tr.Debugf("t=%.3f", 0.5)
	entries := lines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "error", entries[0]["level"])
	assert.Equal(t, "failed: 42", entries[0]["message"])
	assert.Contains(t, entries[0], "time")
	assert.Equal(t, "debug", entries[1]["level"])
	assert.Equal(t, "t=0.500", entries[1]["message"])
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf, false)
	tr.SetTraceLevel(tracing.LevelInfo)
	tr.P("anchor", 3).P("mode", "G1").Infof("placed")
	tr.P("anchor", 4).Debugf("hidden")
	tr.Infof("plain")
	entries := lines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, float64(3), entries[0]["anchor"])
	assert.Equal(t, "G1", entries[0]["mode"])
	assert.Equal(t, "placed", entries[0]["message"])
	assert.NotContains(t, entries[1], "anchor")
}

func TestSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	tr := New(&first, false)
	tr.Errorf("one")
	tr.SetOutput(&second)
	tr.Errorf("two")
	assert.Contains(t, first.String(), "one")
	assert.NotContains(t, first.String(), "two")
	assert.Contains(t, second.String(), "two")
}

func TestConsoleSelector(t *testing.T) {
	var buf bytes.Buffer
	tracing.SetTraceSelector(tracing.SelectorForAdapter(GetAdapter(&buf, true)))
	defer tracing.SetTraceSelector(nil)
	tr := tracing.Select("glider")
	tr.SetTraceLevel(tracing.LevelInfo)
	tr.Infof("ready, joint at %s", "(4,1,0)")
	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "ready, joint at (4,1,0)")
}
