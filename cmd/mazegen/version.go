// Version command for the mazegen CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akk228/maze/pkg/maze"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mazegen version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mazegen", maze.Version)
	},
}
