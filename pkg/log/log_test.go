package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("keeps a valid incoming id", func(t *testing.T) {
		incoming := uuid.New().String()
		ctx, id := WithCorrelationID(context.Background(), incoming)

		assert.Equal(t, incoming, id)
		assert.Equal(t, incoming, GetCorrelationID(ctx))
	})

	t.Run("replaces a missing or malformed id", func(t *testing.T) {
		for _, incoming := range []string{"", "not-a-uuid"} {
			ctx, id := WithCorrelationID(context.Background(), incoming)

			assert.NotEqual(t, incoming, id)
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
			assert.Equal(t, id, GetCorrelationID(ctx))
		}
	})
}

func TestGetCorrelationID_Empty(t *testing.T) {
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestForContext_AddsCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	original := logrus.StandardLogger().Out
	defer logrus.SetOutput(original)

	var buf bytes.Buffer
	Setup("debug")
	logrus.SetOutput(&buf)

	ctx, id := WithCorrelationID(context.Background(), "")
	ForContext(ctx).WithFields(Fields{"dataset": "ridership", "user_agent": "curl"}).Info("loading: dataset ready")

	out := buf.String()
	assert.Contains(t, out, id)
	assert.Contains(t, out, "dataset=ridership")
	assert.NotContains(t, out, "curl", "verbose fields are dropped in development")
}

func TestSetup_InvalidLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.Equal(t, logrus.InfoLevel, Setup("verbose"))
	assert.Equal(t, logrus.WarnLevel, Setup("warn"))
}
