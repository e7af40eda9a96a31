// neonbreaker is a neon brick breaker for the terminal.
//
// Usage:
//
//	neonbreaker                      - Play (same as `neonbreaker play`)
//	neonbreaker play                 - Play in this terminal
//	neonbreaker scores               - Show the best runs
//	neonbreaker serve                - Start SSH server for remote play
//	neonbreaker commentary serve     - Run the local commentary service
//	neonbreaker config dump          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible serves
//	--db <path>           - Set database path (default: ~/.neonbreaker/scores.db)
//	--config <path>       - Use a YAML or TOML config file
//	--difficulty <name>   - Apply a preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonbreaker",
	Short: "Neon Breaker - break bricks in your terminal",
	Long: `Neon Breaker is a brick breaker for the terminal. Move the paddle with
the mouse or the arrow keys, clear every brick to advance, and listen to the
commentator react to your wins and losses.

Available commands:
  play        - Play in this terminal (default)
  scores      - View the best runs
  serve       - Start SSH server for remote play
  commentary  - Run the local commentary service
  config      - Inspect configuration

Examples:
  neonbreaker
  neonbreaker play --difficulty hard
  neonbreaker serve --ssh :2222
  neonbreaker scores`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.neonbreaker/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(commentaryCmd)
	rootCmd.AddCommand(configCmd)
}
