package personas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Tool is a persona invocable by the model through a shell command
type Tool struct {
	Name        string
	Description string
	Command     string
}

// Executable is the command that runs this program
type Executable string

func (Module) Executable() Executable {
	if path, err := os.Executable(); err == nil {
		return Executable(path)
	}
	return "fash"
}

type GetTools func() ([]Tool, error)

func (Module) GetTools(
	getPersona GetPersona,
	dir Dir,
	executable Executable,
) GetTools {
	return func() ([]Tool, error) {
		persona, err := getPersona()
		if err != nil {
			return nil, err
		}
		if persona == nil || !persona.AllowPersonasAsTools {
			return nil, nil
		}
		return LoadTools(string(dir), string(executable))
	}
}

// LoadTools makes a tool of every persona file in dir, skipping hidden ones
func LoadTools(dir string, executable string) (ret []Tool, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read persona dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != fileExt {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), fileExt)
		if strings.HasPrefix(stem, ".") {
			continue
		}
		persona, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		ret = append(ret, Tool{
			Name:        persona.Name,
			Description: persona.Description,
			Command:     fmt.Sprintf(`%s persona %s task "<task>"`, shellQuote(executable), shellQuote(stem)),
		})
	}
	return
}

// shellQuote quotes s as one sh word when it has characters the shell would interpret
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
			strings.ContainsRune("_-./:@%+=,", r))
	}) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
