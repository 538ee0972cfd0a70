package version

import (
	"fmt"

	"github.com/episan-cli/episan/color"
	"github.com/episan-cli/episan/constant"
	"github.com/episan-cli/episan/icon"
	"github.com/episan-cli/episan/key"
	"github.com/episan-cli/episan/style"
	"github.com/episan-cli/episan/util"
	"github.com/spf13/viper"
)

// Notify prints an upgrade hint when a newer release exists. Failures
// stay silent, an update check must never break a run.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()
	if err != nil {
		return
	}

	if newer, err := Compare(latest, constant.Version); err != nil || newer <= 0 {
		return
	}

	fmt.Printf(`
%s Update available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/episan-cli/episan/releases/tag/v"+latest),
	)
}
