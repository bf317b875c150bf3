// Package runner holds the CLI wiring shared by the edsm and rpni
// binaries: flag parsing, the optional tuning file, the banner/update
// check, and report rendering.
package runner

import (
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

// Options holds the parsed CLI flags shared by both search binaries.
type Options struct {
	AptaFile           string
	Runs               int
	Validate           bool
	Verbose            bool
	Silent             bool
	DisableUpdateCheck bool
	Config             string
}

// ParseFlags parses os.Args for binaryName ("edsm" or "rpni"). The APTA
// file path is accepted as a bare positional argument (`edsm <apta.json>`),
// extracted before goflags parses the remaining recognised flags.
func ParseFlags(binaryName string) *Options {
	opts := &Options{}
	opts.AptaFile, os.Args = extractPositional(os.Args)

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Regular-language inference from labelled prefix tree automata.")

	flagSet.CreateGroup("input", "Input",
		flagSet.IntVarP(&opts.Runs, "runs", "r", 1, "number of times to repeat the search (reports min/median/max duration)"),
		flagSet.BoolVarP(&opts.Validate, "validate", "vd", false, "validate the APTA before and the learned DFA after the search"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display per-round telemetry"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", DefaultConfigFilePath, "dfatoolkit cli tuning config file"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(binaryName), "update", "up", "update "+binaryName+" to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic "+binaryName+" update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	showBanner(binaryName)

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback(binaryName)()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("%s version check failed: %v", binaryName, err.Error())
			}
		} else {
			gologger.Info().Msgf("Current %s version %v %v", binaryName, version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	if opts.AptaFile == "" {
		gologger.Fatal().Msgf("%s: no APTA file given", binaryName)
	}
	if !fileutil.FileExists(opts.AptaFile) {
		gologger.Fatal().Msgf("%s: APTA file does not exist: %s", binaryName, opts.AptaFile)
	}

	loadTuningConfig(opts)

	return opts
}

// extractPositional removes and returns the first argument that does not
// look like a flag (doesn't start with '-'), leaving the rest of argv
// untouched for goflags to parse.
func extractPositional(argv []string) (string, []string) {
	remaining := make([]string, 0, len(argv))
	positional := ""
	for i, arg := range argv {
		if i == 0 {
			remaining = append(remaining, arg)
			continue
		}
		if positional == "" && !strings.HasPrefix(arg, "-") {
			positional = arg
			continue
		}
		remaining = append(remaining, arg)
	}
	return positional, remaining
}
