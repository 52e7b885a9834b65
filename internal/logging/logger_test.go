package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, GetLevel(" WARN "))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("error"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("nonsense"))
	assert.Equal(t, logrus.TraceLevel, GetLevel(""))
}

func TestToSentryEvent(t *testing.T) {
	now := time.Now()
	entry := &logrus.Entry{
		Level:   logrus.ErrorLevel,
		Message: "complete day failed",
		Time:    now,
		Data: logrus.Fields{
			"user_id": 4,
			"err":     errors.New("db down"),
		},
	}

	event := toSentryEvent(entry)
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "complete day failed", event.Message)
	assert.Equal(t, now, event.Timestamp)
	assert.Equal(t, "4", event.Extra["user_id"])
	assert.Equal(t, "db down", event.Extra["err"])
}

func TestSentryHook_Levels(t *testing.T) {
	hook := NewSentryHook([]logrus.Level{logrus.ErrorLevel})
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.PanicLevel))
	assert.Equal(t, sentry.LevelWarning, sentryLevel(logrus.WarnLevel))
	assert.Equal(t, sentry.LevelDebug, sentryLevel(logrus.TraceLevel))
}
