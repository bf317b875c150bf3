package runner

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

// DefaultConfigFilePath is the default location of the optional CLI
// tuning file, under `$HOME/.config/<tool>/`.
var DefaultConfigFilePath = filepath.Join(getUserHomeDir(), ".config/dfatoolkit/config.yaml")

// tuningConfig holds search-tuning defaults that can be set once instead
// of passed on every invocation. It never holds a learned DFA or any other
// persisted search state; the system otherwise stays stateless.
type tuningConfig struct {
	Verbose bool `yaml:"verbose"`
}

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

// loadTuningConfig applies opts.Config (or DefaultConfigFilePath, if
// opts.Config was left at its default) on top of opts, when that file
// exists. A missing file is not an error: the tuning file is optional.
func loadTuningConfig(opts *Options) {
	path := opts.Config
	if path == "" {
		path = DefaultConfigFilePath
	}
	if !fileutil.FileExists(path) {
		return
	}

	bin, err := os.ReadFile(path)
	if err != nil {
		gologger.Warning().Msgf("failed to read tuning config %v got: %v", path, err)
		return
	}

	var cfg tuningConfig
	if errx := yaml.Unmarshal(bin, &cfg); errx != nil {
		gologger.Error().Msgf("dfatoolkit tuning config syntax error.\n%v\n", yaml.FormatError(errx, true, true))
		return
	}

	if cfg.Verbose {
		opts.Verbose = true
	}
}
