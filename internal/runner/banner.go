package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = (`
     _  __          _              _ _    _ _
  __| |/ _| __ _    | |_ ___  ___ | | | _(_) |_
 / _' | |_ / _' |   | __/ _ \/ _ \| | |/ / | __|
| (_| |  _| (_| |   | ||  __/ (_) | |   <| | |_
 \__,_|_|  \__,_|    \__\___|\___/|_|_|\_\_|\__|
`)

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner(binaryName string) {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\t%s - projectdiscovery.io\n\n", binaryName)
}

// GetUpdateCallback returns a callback function that updates the given
// binary (edsm or rpni).
func GetUpdateCallback(binaryName string) func() {
	return func() {
		showBanner(binaryName)
		updateutils.GetUpdateToolCallback(binaryName, version)()
	}
}
