package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smazurov/fourzone/internal/snapshot"
)

// StateCmd decodes and prints a persisted lighting state file.
var StateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect the persisted lighting state",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read state file: %w", err)
		}
		snap, err := snapshot.Unmarshal(data)
		if err != nil {
			return err
		}

		fmt.Printf("mode:       %s\n", snap.Mode.String())
		fmt.Printf("speed:      %d\n", snap.Speed)
		fmt.Printf("brightness: %d\n", snap.Brightness)
		for i, c := range snap.Colors {
			fmt.Printf("zone %d:     #%s\n", i, c.Hex())
		}
		return nil
	},
}

func init() {
	StateCmd.Flags().StringP("file", "f", snapshot.DefaultPath, "State file to inspect")
}
