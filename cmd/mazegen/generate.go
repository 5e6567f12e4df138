// Generate command for the mazegen CLI.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akk228/maze/pkg/maze"
	"github.com/akk228/maze/pkg/types"
)

var (
	generateLength int
	generateWidth  int
	generateSeed   int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a maze and print it",
	Long: `Generate carves a random maze of the given dimensions and prints it
as a character grid: I entrance, O exit, X wall, . passage. Dimensions
default to the values in config.yaml. The same --seed reproduces the
same maze; seed 0 picks a time-based one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		length := generateLength
		if !cmd.Flags().Changed("length") {
			length = cfg.GetInt(cfgKeyLength)
		}
		width := generateWidth
		if !cmd.Flags().Changed("width") {
			width = cfg.GetInt(cfgKeyWidth)
		}

		m, err := maze.Generate(length, width, generateSeed)
		if err != nil {
			fmt.Fprintln(os.Stderr, "generate:", err)
			if errors.Is(err, types.ErrInvalidDimensions) {
				os.Exit(exitUserError)
			}
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(m, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(m.Grid.Render())
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateLength, "length", 0, "maze length in rows (default from config)")
	generateCmd.Flags().IntVar(&generateWidth, "width", 0, "maze width in columns (default from config)")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "random seed (0 picks a time-based seed)")
}
