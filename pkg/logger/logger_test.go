package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithOutput("debug", "json", buf)

	log.WithField("service", "store").Debug("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "store", entry["service"])
}

func TestNewWithOutput_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := NewWithOutput("loud", "text", &bytes.Buffer{})

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	_, isText := log.Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)
}
