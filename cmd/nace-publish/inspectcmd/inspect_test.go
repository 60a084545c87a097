package inspectcmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nacepublish.run/internal/publish"
	"nacepublish.run/internal/testutil/publishmocks"
)

func TestInspectDist(t *testing.T) {
	t.Parallel()

	pub := &publishmocks.PublisherMock{}
	pub.On("StepsNamed", []string{"inspect"}).Return([]publish.Step{{Name: "inspect"}})
	pub.On("RunSteps", mock.Anything, mock.Anything).Return(nil)

	factory := &publishmocks.PublisherFactoryMock{}
	factory.On("Publisher").Return(pub, nil)

	cmd := NewCmd(factory)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	pub.AssertExpectations(t)
	pub.AssertNotCalled(t, "WheelInspection", mock.Anything)
}

func TestInspectWheelPath(t *testing.T) {
	t.Parallel()

	const path = "/tmp/naceconverter-1.0.0-py3-none-any.whl"

	pub := &publishmocks.PublisherMock{}
	pub.On("WheelInspection", path).Return(publish.Step{Name: "inspect"})
	pub.On("RunSteps", mock.Anything, mock.Anything).Return(nil)

	factory := &publishmocks.PublisherFactoryMock{}
	factory.On("Publisher").Return(pub, nil)

	cmd := NewCmd(factory)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	pub.AssertExpectations(t)
	pub.AssertNotCalled(t, "StepsNamed", mock.Anything)
}

func TestInspectInvalidArgs(t *testing.T) {
	t.Parallel()

	for name, args := range map[string][]string{
		"empty path":     {""},
		"too many paths": {"a.whl", "b.whl"},
	} {
		args := args

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			factory := &publishmocks.PublisherFactoryMock{}

			cmd := NewCmd(factory)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(args)

			require.Error(t, cmd.Execute())
			factory.AssertNotCalled(t, "Publisher")
		})
	}
}
