package preflightcmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nacepublish.run/internal/publish"
	"nacepublish.run/internal/testutil/publishmocks"
)

func TestPreflight(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		RunErr error
	}{
		"tools present": {},
		"tool missing": {
			RunErr: &publish.StepError{
				Step:     "preflight",
				Category: publish.CategoryPrecondition,
				Err:      fmt.Errorf("%w: uv", publish.ErrToolNotFound),
			},
		},
	} {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			pub := &publishmocks.PublisherMock{}
			pub.On("StepsNamed", []string{"preflight"}).Return([]publish.Step{{Name: "preflight"}})
			pub.On("RunSteps", mock.Anything, mock.Anything).Return(tc.RunErr)

			factory := &publishmocks.PublisherFactoryMock{}
			factory.On("Publisher").Return(pub, nil)

			cmd := NewCmd(factory)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{})

			err := cmd.Execute()
			if tc.RunErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, publish.ErrToolNotFound)
			cat, ok := publish.CategoryOf(err)
			require.True(t, ok)
			require.Equal(t, publish.CategoryPrecondition, cat)
		})
	}
}
