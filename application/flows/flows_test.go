package flows

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"web_validator/application/interaction"
	"web_validator/infrastructure/browser/browsertest"
	"web_validator/infrastructure/locators"
	"web_validator/infrastructure/storage"
)

type memorySink map[string]interface{}

func (m memorySink) Add(key string, value interface{}) {
	m[key] = value
}

func (m memorySink) AddMany(values map[string]interface{}) {
	for k, v := range values {
		m[k] = v
	}
}

type fixture struct {
	env     Env
	page    *browsertest.Page
	sink    memorySink
	catalog *locators.Catalog
	dir     string
	hook    *test.Hook
}

func newFixture(t *testing.T, page *browsertest.Page) *fixture {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewWorkspace(storage.Dirs{Screenshots: dir})
	require.NoError(t, err)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	svc := interaction.NewService(page, store, logger, interaction.Options{
		ProbeTimeout:     time.Second,
		ElementTimeout:   time.Second,
		ActionTimeout:    time.Second,
		PollInterval:     250 * time.Millisecond,
		ScreenshotFormat: "png",
	}).WithSleep(func(ctx context.Context, d time.Duration) error {
		return ctx.Err()
	})

	sink := memorySink{}
	return &fixture{
		env:     Env{UI: svc, Report: sink, Logger: logger},
		page:    page,
		sink:    sink,
		catalog: locators.Default(),
		dir:     dir,
		hook:    hook,
	}
}
