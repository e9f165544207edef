package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastConfig keeps backoff negligible so tests run quickly.
var fastConfig = Config{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     5 * time.Millisecond,
	Multiplier:   2.0,
	JitterFactor: 0,
}

func TestDoWithResult_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	result, err := DoWithResult(context.Background(), func() (string, error) {
		calls++
		return "ok", nil
	}, fastConfig)

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestDoWithResult_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	result, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	}, fastConfig)

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, calls)
}

func TestDoWithResult_ExhaustsAttempts(t *testing.T) {
	calls := 0
	failure := errors.New("still failing")
	_, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 0, failure
	}, fastConfig)

	assert.ErrorIs(t, err, failure)
	assert.Equal(t, 3, calls, "should run exactly MaxAttempts times")
}

func TestDoWithResult_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	permanent := NewPermanent(errors.New("bad request"))
	_, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 0, permanent
	}, fastConfig.WithRetryIf(SkipPermanent))

	assert.Error(t, err)
	assert.Equal(t, 1, calls, "permanent error must not be retried")
}

func TestDoWithResult_ZeroAttemptsDefaultsToOne(t *testing.T) {
	calls := 0
	cfg := fastConfig.WithMaxAttempts(0)
	_, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 0, errors.New("fail")
	}, cfg)

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoWithResult_ContextCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := DoWithResult(ctx, func() (int, error) {
		calls++
		return 0, nil
	}, fastConfig)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestDoWithResult_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := Config{
		MaxAttempts:  5,
		InitialDelay: time.Second,
		MaxDelay:     time.Second,
		Multiplier:   1.0,
	}

	calls := 0
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := DoWithResult(ctx, func() (int, error) {
		calls++
		return 0, errors.New("transient")
	}, cfg)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), 500*time.Millisecond, "should abort backoff early")
}

func TestSleepTime_CapsAtMaxDelay(t *testing.T) {
	d := sleepTime(10*time.Second, time.Second, 0.5)
	assert.Equal(t, time.Second, d)
}

func TestSleepTime_AddsJitterWithinBounds(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 20; i++ {
		d := sleepTime(base, time.Minute, 0.2)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, 120*time.Millisecond)
	}
}

func TestPermanent_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewPermanent(inner)

	assert.ErrorIs(t, err, inner)
	assert.True(t, IsPermanent(err))
	assert.Equal(t, "inner", err.Error())
}

func TestPermanent_NilPassthrough(t *testing.T) {
	assert.NoError(t, NewPermanent(nil))
	assert.False(t, IsPermanent(errors.New("plain")))
}

func TestSkipPermanent(t *testing.T) {
	assert.True(t, SkipPermanent(errors.New("transient")))
	assert.False(t, SkipPermanent(NewPermanent(errors.New("fatal"))))
}

func TestSourceConfig_Defaults(t *testing.T) {
	assert.Equal(t, 3, SourceConfig.MaxAttempts)
	assert.Equal(t, 200*time.Millisecond, SourceConfig.InitialDelay)
	assert.Equal(t, 5*time.Second, SourceConfig.MaxDelay)
}
