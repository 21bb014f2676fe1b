// atcharts renders diagnostic charts from the training logs an agent writes,
// one output directory of images per log file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "atcharts",
		Short:   "Render diagnostic charts (reward, time per cycle, model size) from agent training logs",
		Version: version,
	}

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(inspectCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
