package fashconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/logs"
)

//go:embed schema.cue
var schema string

// Schema is the embedded CUE schema every config file is validated against
func Schema() string {
	return schema
}

var filenames = []string{
	"fash.cue",
	".fash.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := DiscoverPaths()
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}

// DiscoverPaths returns existing config files, the working directory first
func DiscoverPaths() (paths []string) {
	var dirs []string

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(configDir, "fash"))
	}

	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		paths = append(paths, existing(dir)...)
	}
	return
}

func existing(dir string) (paths []string) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	return
}
