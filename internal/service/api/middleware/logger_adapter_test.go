package middleware

import (
	"bytes"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogger_Level(t *testing.T) {
	tests := []struct {
		name        string
		logrusLevel logrus.Level
		expected    log.Lvl
	}{
		{"Trace", logrus.TraceLevel, log.DEBUG},
		{"Debug", logrus.DebugLevel, log.DEBUG},
		{"Info", logrus.InfoLevel, log.INFO},
		{"Warn", logrus.WarnLevel, log.WARN},
		{"Error", logrus.ErrorLevel, log.ERROR},
		{"Fatal", logrus.FatalLevel, log.OFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := logrus.New()
			l.SetLevel(tt.logrusLevel)

			assert.Equal(t, tt.expected, Logger{l}.Level())
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    log.Lvl
		expected logrus.Level
	}{
		{"Debug", log.DEBUG, logrus.DebugLevel},
		{"Info", log.INFO, logrus.InfoLevel},
		{"Warn", log.WARN, logrus.WarnLevel},
		{"Error", log.ERROR, logrus.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := logrus.New()
			Logger{l}.SetLevel(tt.input)

			assert.Equal(t, tt.expected, l.GetLevel())
		})
	}

	t.Run("OFF는 무시", func(t *testing.T) {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		Logger{l}.SetLevel(log.OFF)

		assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	})
}

func TestLogger_Output(t *testing.T) {
	l := logrus.New()
	logger := Logger{l}

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	assert.Same(t, &buf, logger.Output())

	logger.SetPrefix("ignored")
	assert.Empty(t, logger.Prefix())

	logger.Infof("hello %s", "echo")
	logger.Warnj(log.JSON{"key": "value"})
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "hello echo")
	assert.Contains(t, out, "key=value")
	assert.NotContains(t, out, "hidden")
}
