package interaction

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web_validator/domain/entities"
	"web_validator/domain/interfaces"
	"web_validator/infrastructure/browser/browsertest"
)

const target = "https://shop.example.com/"

func TestNavigateSucceedsFirstAttempt(t *testing.T) {
	page := browsertest.NewPage()
	h := newHarness(t, page, defaultOptions())

	outcome := h.svc.Navigate(context.Background(), target, 3, 2*time.Second)

	assert.True(t, outcome.Success)
	require.NotNil(t, outcome.HTTPStatus)
	assert.Equal(t, 200, *outcome.HTTPStatus)
	assert.Equal(t, 1, outcome.Attempts)
	assert.Equal(t, []string{target}, page.GotoCalls)
	assert.Empty(t, h.sleeps)
}

func TestNavigateFailsAfterAllAttempts(t *testing.T) {
	page := browsertest.NewPage()
	page.Results = []browsertest.GotoResult{{Err: fmt.Errorf("%w: 60000ms exceeded", entities.ErrTimeout)}}
	h := newHarness(t, page, defaultOptions())

	outcome := h.svc.Navigate(context.Background(), target, 3, 2*time.Second)

	assert.False(t, outcome.Success)
	assert.Nil(t, outcome.HTTPStatus)
	assert.Len(t, page.GotoCalls, 3)
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, h.sleeps)
}

func TestNavigateSucceedsOnLaterAttempt(t *testing.T) {
	page := browsertest.NewPage()
	page.Results = []browsertest.GotoResult{
		{Err: browsertest.ErrBoom},
		{NoResponse: true},
		{Status: 204},
	}
	h := newHarness(t, page, defaultOptions())

	outcome := h.svc.Navigate(context.Background(), target, 5, time.Second)

	assert.True(t, outcome.Success)
	assert.Equal(t, 204, outcome.StatusOrZero())
	assert.Equal(t, 3, outcome.Attempts)
	assert.Len(t, h.sleeps, 2)
}

func TestNavigateDoesNotRetryErrorStatus(t *testing.T) {
	page := browsertest.NewPage()
	page.Results = []browsertest.GotoResult{{Status: 503}, {Status: 200}}
	h := newHarness(t, page, defaultOptions())

	outcome := h.svc.Navigate(context.Background(), target, 3, time.Second)

	assert.False(t, outcome.Success)
	assert.Equal(t, 503, outcome.StatusOrZero())
	assert.Len(t, page.GotoCalls, 1)
	assert.Empty(t, h.sleeps)
}

func TestNavigateTreatsZeroRetriesAsOneAttempt(t *testing.T) {
	page := browsertest.NewPage()
	page.Results = []browsertest.GotoResult{{Err: browsertest.ErrBoom}}
	h := newHarness(t, page, defaultOptions())

	outcome := h.svc.Navigate(context.Background(), target, 0, time.Second)

	assert.False(t, outcome.Success)
	assert.Len(t, page.GotoCalls, 1)
	assert.Empty(t, h.sleeps)
}

func TestNavigateStopsWhenCancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	page := browsertest.NewPage()
	page.GotoFn = func(url string, opts interfaces.GotoOptions) (interfaces.Response, error) {
		cancel()
		return nil, browsertest.ErrBoom
	}
	h := newHarness(t, page, defaultOptions())

	outcome := h.svc.Navigate(ctx, target, 3, time.Second)

	assert.False(t, outcome.Success)
	assert.Len(t, page.GotoCalls, 1)
	assert.Len(t, h.sleeps, 1)
}

func TestNavigatePassesWaitUntilAndTimeout(t *testing.T) {
	var got interfaces.GotoOptions
	page := browsertest.NewPage()
	page.GotoFn = func(url string, opts interfaces.GotoOptions) (interfaces.Response, error) {
		got = opts
		return browsertest.Response(200), nil
	}
	h := newHarness(t, page, defaultOptions())

	h.svc.Navigate(context.Background(), target, 1, time.Second)

	assert.Equal(t, "domcontentloaded", got.WaitUntil)
	assert.Equal(t, 60*time.Second, got.Timeout)
}
