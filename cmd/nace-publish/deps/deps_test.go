package deps

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	deps, err := Build()
	require.NoError(t, err)

	require.NoError(t, deps.Invoke(func(rootCmd *cobra.Command) {
		names := make([]string, 0, len(rootCmd.Commands()))
		for _, c := range rootCmd.Commands() {
			names = append(names, c.Name())
		}

		assert.Subset(t, names, []string{"run", "clean", "preflight", "inspect", "version"})
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup("project-dir"))
	}))
}
