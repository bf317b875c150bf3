package runner

import (
	"fmt"
	"math"
	"sort"

	"github.com/projectdiscovery/dfatoolkit"
	"github.com/projectdiscovery/fasttemplate"
	"github.com/projectdiscovery/gologger"
)

// reportTemplate renders the five fixed report lines both binaries print,
// using {{ }} placeholders filled in by fasttemplate.
const reportTemplate = `Number of States: {{states}}
Duration: {{duration}}s
Merges/s: {{mergesps}}
Attempted Merges: {{attempted}}
Valid Merges: {{valid}}
`

// PrintReport renders one search's result and telemetry to stdout via
// gologger.Print, following the fixed line set above.
func PrintReport(result *dfatoolkit.DFA, telemetry *dfatoolkit.TelemetryReport) {
	rendered := fasttemplate.ExecuteStringStd(reportTemplate, "{{", "}}", map[string]interface{}{
		"states":    fmt.Sprint(len(result.States)),
		"duration":  fmt.Sprintf("%.2f", telemetry.Duration.Seconds()),
		"mergesps":  fmt.Sprintf("%.0f", math.Round(telemetry.AttemptedMergesPerSecond())),
		"attempted": fmt.Sprint(telemetry.AttemptedMerges),
		"valid":     fmt.Sprint(telemetry.ValidMerges),
	})
	gologger.Print().Msgf("%s", rendered)
}

// PrintRunsSummary prints the min/median/max duration across repeated
// search runs, for the optional multi-run benchmark mode.
func PrintRunsSummary(durationsSeconds []float64) {
	if len(durationsSeconds) < 2 {
		return
	}

	sorted := append([]float64(nil), durationsSeconds...)
	sort.Float64s(sorted)

	median := sorted[len(sorted)/2]
	if len(sorted)%2 == 0 {
		median = (sorted[len(sorted)/2-1] + sorted[len(sorted)/2]) / 2
	}

	gologger.Print().Msgf("Min Duration: %.2fs\n", sorted[0])
	gologger.Print().Msgf("Median Duration: %.2fs\n", median)
	gologger.Print().Msgf("Max Duration: %.2fs\n", sorted[len(sorted)-1])
}
