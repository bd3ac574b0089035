package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/smazurov/fourzone/internal/color"
	"github.com/smazurov/fourzone/internal/effects"
)

// PreviewCmd renders an animation mode to the terminal as ANSI color
// blocks, one line per frame. Useful for tuning effects without the
// hardware.
var PreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview an animation mode in the terminal",
	Long:  `Renders the selected animation mode as ANSI true-color blocks, one frame per tick, without touching the hardware.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		modeName, _ := cmd.Flags().GetString("mode")
		speed, _ := cmd.Flags().GetInt("speed")
		baseHex, _ := cmd.Flags().GetString("color")
		duration, _ := cmd.Flags().GetDuration("duration")

		mode, err := effects.ParseMode(modeName)
		if err != nil {
			return err
		}
		if mode == effects.Static {
			return fmt.Errorf("static mode has no animation to preview")
		}
		if speed < 1 || speed > 10 {
			return fmt.Errorf("speed %d out of range [1,10]", speed)
		}
		base, err := color.ParseHex(baseHex)
		if err != nil {
			return err
		}

		fn, ok := effects.Lookup(mode)
		if !ok {
			return fmt.Errorf("mode %q has no effect function", modeName)
		}

		var zones effects.Zones
		for i := range zones {
			zones[i] = base
		}

		start := time.Now()
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()

		for now := range ticker.C {
			elapsed := now.Sub(start)
			if elapsed > duration {
				break
			}
			frame := fn(elapsed, speed, zones)
			for _, c := range frame {
				fmt.Fprintf(os.Stdout, "\x1b[48;2;%d;%d;%dm      \x1b[0m ", c.R, c.G, c.B)
			}
			fmt.Fprintf(os.Stdout, " %s\r", mode.String())
		}
		fmt.Fprintln(os.Stdout)
		return nil
	},
}

func init() {
	PreviewCmd.Flags().StringP("mode", "m", "rainbow", "Animation mode to preview")
	PreviewCmd.Flags().IntP("speed", "s", 5, "Animation speed (1-10)")
	PreviewCmd.Flags().String("color", "ff0000", "Base color as hex RGB")
	PreviewCmd.Flags().DurationP("duration", "d", 5*time.Second, "How long to run the preview")
}
