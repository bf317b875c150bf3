package main

import (
	"github.com/projectdiscovery/dfatoolkit/edsm"
	"github.com/projectdiscovery/dfatoolkit/internal/apta"
	"github.com/projectdiscovery/dfatoolkit/internal/runner"
	"github.com/projectdiscovery/gologger"
)

func main() {
	opts := runner.ParseFlags("edsm")

	aptaDFA, err := apta.Load(opts.AptaFile)
	if err != nil {
		gologger.Fatal().Msgf("edsm: failed to load %v got: %v", opts.AptaFile, err)
	}

	if opts.Validate {
		if err := aptaDFA.Validate(); err != nil {
			gologger.Fatal().Msgf("edsm: invalid APTA: %v", err)
		}
	}

	durations := make([]float64, 0, opts.Runs)

	for run := 0; run < opts.Runs; run++ {
		result, telemetry := edsm.RunVerbose(aptaDFA, opts.Verbose)

		if opts.Validate {
			if err := result.Validate(); err != nil {
				gologger.Fatal().Msgf("edsm: learned DFA failed validation: %v", err)
			}
		}

		runner.PrintReport(result, telemetry)
		durations = append(durations, telemetry.Duration.Seconds())
	}

	runner.PrintRunsSummary(durations)
}
