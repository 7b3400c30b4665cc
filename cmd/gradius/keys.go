package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gradius/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long:  `Shows the key bindings in effect after loading the configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func runKeys(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	keys := tui.NewKeyMap(cfg.Keys)
	bindings := []key.Binding{keys.Start, keys.Quit, keys.Up, keys.Down, keys.Fire, keys.ForceQuit}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Key bindings (config: %s):\n", source)
	fmt.Fprintln(out)

	// Calculate column widths
	maxKeyLen := 3 // "Key" header
	for _, b := range bindings {
		if n := len(b.Help().Key); n > maxKeyLen {
			maxKeyLen = n
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "Key", "Action")
	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "---", "------")
	for _, b := range bindings {
		fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, b.Help().Key, b.Help().Desc)
	}
	return nil
}
