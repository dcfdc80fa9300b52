package main

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry(t *testing.T) {
	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		err := retry(3, 0, func() error {
			calls++
			if calls < 3 {
				return errors.New("not yet")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error", func(t *testing.T) {
		calls := 0
		err := retry(2, 0, func() error {
			calls++
			return errors.New("down")
		})
		assert.EqualError(t, err, "down")
		assert.Equal(t, 2, calls)
	})

	t.Run("zero attempts still tries once", func(t *testing.T) {
		calls := 0
		_ = retry(0, 0, func() error {
			calls++
			return errors.New("down")
		})
		assert.Equal(t, 1, calls)
	})
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate"}, names)
}
