package generators

import (
	"fmt"
	"sync"

	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/logs"
)

// GeneratorSpec is a user-defined model from the generators config list
type GeneratorSpec struct {
	Name string `json:"name"`
	Type string `json:"type"`
	GeneratorArgs
}

// GetGeneratorSpecs returns the specs of all config files. A name defined in an earlier file shadows later ones.
type GetGeneratorSpecs func() ([]GeneratorSpec, error)

func (Module) GetGeneratorSpecs(
	loader configs.Loader,
	logger logs.Logger,
) GetGeneratorSpecs {
	return sync.OnceValues(func() (ret []GeneratorSpec, err error) {
		defined := make(map[string]bool)
		for value, err := range loader.IterCueValues("generators") {
			if err != nil {
				return nil, err
			}
			var specs []GeneratorSpec
			if err := value.Decode(&specs); err != nil {
				return nil, fmt.Errorf("decode generators: %w", err)
			}
			seen := make(map[string]bool)
			for _, spec := range specs {
				if seen[spec.Name] {
					return nil, fmt.Errorf("duplicated generator name: %s", spec.Name)
				}
				seen[spec.Name] = true
				if defined[spec.Name] {
					logger.Debug("generator shadowed", "name", spec.Name)
					continue
				}
				defined[spec.Name] = true
				ret = append(ret, spec)
			}
		}
		return
	})
}
