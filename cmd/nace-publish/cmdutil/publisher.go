package cmdutil

import (
	"context"

	"nacepublish.run/internal/publish"
)

// PublisherFactory creates a Publisher once flags are parsed.
type PublisherFactory interface {
	Publisher() (Publisher, error)
}

type Publisher interface {
	Run(ctx context.Context) error
	RunSteps(ctx context.Context, steps ...publish.Step) error
	StepsNamed(names ...string) []publish.Step
	WheelInspection(path string) publish.Step
}
