package publishmocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nacepublish.run/cmd/nace-publish/cmdutil"
	"nacepublish.run/internal/publish"
)

var (
	_ cmdutil.PublisherFactory = (*PublisherFactoryMock)(nil)
	_ cmdutil.Publisher        = (*PublisherMock)(nil)
)

type PublisherFactoryMock struct {
	mock.Mock
}

func (m *PublisherFactoryMock) Publisher() (cmdutil.Publisher, error) {
	args := m.Called()
	pub, _ := args.Get(0).(cmdutil.Publisher)

	return pub, args.Error(1)
}

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) Run(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *PublisherMock) RunSteps(ctx context.Context, steps ...publish.Step) error {
	args := m.Called(ctx, steps)
	return args.Error(0)
}

func (m *PublisherMock) StepsNamed(names ...string) []publish.Step {
	args := m.Called(names)
	return args.Get(0).([]publish.Step)
}

func (m *PublisherMock) WheelInspection(path string) publish.Step {
	args := m.Called(path)
	return args.Get(0).(publish.Step)
}
