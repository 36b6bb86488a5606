package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("anonymous without viewer", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Equal(t, "anonymous", l.Data["user"])
		assert.NotContains(t, l.Data, RequestIDKey)
	})

	t.Run("request id and viewer from context", func(t *testing.T) {
		ctx := ContextWith(context.Background(), RequestIDKey, "req-1")
		ctx = ContextWith(ctx, ViewerKey, "22.00000-0@maua.br")

		l := WithContext(ctx)
		assert.Equal(t, "req-1", l.Data[RequestIDKey])
		assert.Equal(t, "22.00000-0@maua.br", l.Data["user"])
	})

	t.Run("nil context", func(t *testing.T) {
		assert.NotNil(t, WithContext(nil))
	})
}

func TestWithComponent(t *testing.T) {
	l := WithComponent("twitch").WithField("channel", "mauaesports")
	assert.Equal(t, "twitch", l.Data["component"])
	assert.Equal(t, "mauaesports", l.Data["channel"])
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
