package deps

import (
	"go.uber.org/dig"

	"nacepublish.run/cmd/nace-publish/rootcmd"
)

func Build() (*dig.Container, error) {
	container := dig.New()

	for _, c := range constructors() {
		if err := container.Provide(c); err != nil {
			return nil, err
		}
	}

	return container, nil
}

func constructors() []any {
	return []any{
		rootcmd.ProvideRootCmd,
		ProvideIOStreams,
		ProvideArgs,
		ProvideOptions,
		ProvideLogFactory,
		ProvidePublisherFactory,
		ProvideRunCmd,
		ProvideCleanCmd,
		ProvidePreflightCmd,
		ProvideInspectCmd,
		ProvideVersionCmd,
	}
}
