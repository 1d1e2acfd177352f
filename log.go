package livechart

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger receives debug output about point view lifecycles, superseded
// animations and layout passes.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "livechart",
	Level:  log.WarnLevel,
})

// SetDebug switches Logger to debug level (or back to warn level).
func SetDebug(on bool) {
	if on {
		Logger.SetLevel(log.DebugLevel)
		return
	}
	Logger.SetLevel(log.WarnLevel)
}
