package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileHook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indicator.log")

	logger := log.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(newFileHook(path))
	logger.WithField("indicator", "sma").Info("hello")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"hello"`)
	assert.Contains(t, string(content), `"indicator":"sma"`)
}

func TestListCmd(t *testing.T) {
	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	defer listCmd.SetOut(nil)

	require.NoError(t, listCmd.RunE(listCmd, nil))

	typs := strings.Fields(buf.String())
	assert.Contains(t, typs, "macd")
	assert.Contains(t, typs, "vwap")
}
