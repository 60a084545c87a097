package deps

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"nacepublish.run/cmd/nace-publish/rootcmd"
)

func TestZapLogFactory(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		Verbosity   int
		ExpectDebug bool
	}{
		"errors only":  {},
		"verbose":      {Verbosity: 1, ExpectDebug: true},
		"very verbose": {Verbosity: 3, ExpectDebug: true},
	} {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			f := ProvideLogFactory(
				rootcmd.IOStreams{ErrOut: out},
				&rootcmd.Options{Verbosity: tc.Verbosity},
			).(*ZapLogFactory)

			log := f.Logger()
			log.V(1).Info("exec", "cmd", "uv venv .venv")
			log.Error(errors.New("boom"), "writing metrics")

			assert.Equal(t, tc.ExpectDebug, bytes.Contains(out.Bytes(), []byte("uv venv .venv")))
			assert.Contains(t, out.String(), "writing metrics")
			assert.Contains(t, out.String(), f.runID)
		})
	}
}
