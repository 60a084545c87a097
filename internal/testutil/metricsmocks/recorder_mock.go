package metricsmocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type RecorderMock struct {
	mock.Mock
}

func (r *RecorderMock) ObserveStep(step string, d time.Duration, err error) {
	r.Called(step, d, err)
}

func (r *RecorderMock) ObserveRun(finished time.Time, err error) {
	r.Called(finished, err)
}

func (r *RecorderMock) WriteTextfile(path string) error {
	args := r.Called(path)
	return args.Error(0)
}
