package logger

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInit_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, Init("debug").GetLevel())
	assert.Equal(t, logrus.WarnLevel, Init("WARN").GetLevel())
}

func TestInit_BadLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, Init("loud").GetLevel())
}

func TestInit_WritesToStderr(t *testing.T) {
	l := Init("info")
	assert.Equal(t, os.Stderr, l.Out)

	f, ok := l.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
	assert.True(t, f.FullTimestamp)
}
