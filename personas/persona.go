package personas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/reusee/fash/cmds"
	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/logs"
	"github.com/reusee/fash/vars"
)

type Persona struct {
	Name                 string `toml:"name"`
	Description          string `toml:"description"`
	Instructions         string `toml:"instructions"`
	AllowPersonasAsTools bool   `toml:"allow_personas_as_tools"`
}

const fileExt = ".toml"

// Load reads a persona file. The extension of path is replaced with .toml.
func Load(path string) (ret Persona, err error) {
	path = strings.TrimSuffix(path, filepath.Ext(path)) + fileExt
	content, err := os.ReadFile(path)
	if err != nil {
		return ret, fmt.Errorf("load persona: %w", err)
	}
	if err := toml.Unmarshal(content, &ret); err != nil {
		return ret, fmt.Errorf("decode persona %s: %w", path, err)
	}
	return ret, nil
}

type Dir string

func (Module) Dir(
	loader configs.Loader,
) Dir {
	var userDir string
	if configDir, err := os.UserConfigDir(); err == nil {
		userDir = filepath.Join(configDir, "fash", "personas")
	}
	return vars.FirstNonZero(
		configs.First[Dir](loader, "persona_dir"),
		Dir(os.Getenv("FASH_PERSONA_DIR")),
		Dir(userDir),
	)
}

var personaFlag = cmds.Var[string]("persona", "persona file name in the persona directory")

// Name selects a persona, empty for none
type Name string

func (Module) Name() Name {
	return Name(*personaFlag)
}

// GetPersona returns the selected persona, or nil if none is selected
type GetPersona func() (*Persona, error)

func (Module) GetPersona(
	name Name,
	dir Dir,
	logger logs.Logger,
) GetPersona {
	return func() (*Persona, error) {
		if name == "" {
			return nil, nil
		}
		persona, err := Load(filepath.Join(string(dir), string(name)))
		if err != nil {
			return nil, err
		}
		logger.Info("persona", "name", persona.Name)
		return &persona, nil
	}
}
