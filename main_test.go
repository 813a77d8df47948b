package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"halalfull-support/internal/config"
)

func TestMissingKeyIsConfigError(t *testing.T) {
	t.Setenv("SAMBANOVA_API_KEY", "")
	t.Setenv("SUPPORT_PROVIDER", "")

	for name, run := range map[string]func() error{
		"tui":   func() error { return runTUI(t.Context()) },
		"serve": func() error { return runServer(t.Context(), "127.0.0.1:0") },
	} {
		t.Run(name, func(t *testing.T) {
			err := run()
			require.Error(t, err)

			var cerr configError
			assert.True(t, errors.As(err, &cerr))
			assert.ErrorIs(t, err, config.ErrMissingAPIKey)
		})
	}
}
