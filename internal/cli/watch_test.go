package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/cardrender/pkg/errors"
)

func TestInitialRenderLogsFailure(t *testing.T) {
	orig := log.Logger
	t.Cleanup(func() { log.Logger = orig })
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	calls := 0
	initialRender(context.Background(), func(ctx context.Context, changed []string) error {
		calls++
		assert.Nil(t, changed)
		return errors.New(errors.ErrRender, "card broke")
	})

	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "Initial render failed")
	assert.Contains(t, buf.String(), "card broke")
	assert.Contains(t, buf.String(), `"component":"cli.watch"`)
}

func TestInitialRenderQuietOnSuccess(t *testing.T) {
	orig := log.Logger
	t.Cleanup(func() { log.Logger = orig })
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	initialRender(context.Background(), func(context.Context, []string) error { return nil })
	assert.Empty(t, buf.String())
}
