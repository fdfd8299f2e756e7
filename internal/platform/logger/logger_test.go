package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsse/internal/platform/logger"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		var buf bytes.Buffer
		logger.NewWithWriter(&buf, "").Info("audit created", "audit_id", 7)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "audit created", line["msg"])
		assert.Equal(t, float64(7), line["audit_id"])
	})

	t.Run("text when asked", func(t *testing.T) {
		var buf bytes.Buffer
		logger.NewWithWriter(&buf, "TEXT").Info("audit created", "audit_id", 7)
		assert.True(t, strings.Contains(buf.String(), "audit_id=7"))
	})
}
