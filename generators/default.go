package generators

import (
	"fmt"
	"os"

	"github.com/reusee/fash/cmds"
	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/logs"
	"github.com/reusee/fash/vars"
)

var modelFlag = cmds.Var[string]("-model", "model name, or ollama:<model>")

// DefaultModelName selects the generator of a session
type DefaultModelName string

func (Module) DefaultModelName(
	loader configs.Loader,
	fallback FallbackModelName,
	logger logs.Logger,
) (ret DefaultModelName) {
	ret = vars.FirstNonZero(
		DefaultModelName(*modelFlag),
		configs.First[DefaultModelName](loader, "model"),
		DefaultModelName(os.Getenv("FASH_MODEL")),
		DefaultModelName(fallback),
	)
	logger.Info("model", "name", ret)
	return
}

type FallbackModelName string

func (Module) FallbackModelName() FallbackModelName {
	return "gemini-flash"
}

type GetDefaultGenerator func() (Generator, error)

func (Module) GetDefaultGenerator(
	name DefaultModelName,
	get GetGenerator,
) GetDefaultGenerator {
	return func() (Generator, error) {
		generator, err := get(string(name))
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", name, err)
		}
		return generator, nil
	}
}
