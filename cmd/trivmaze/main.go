// trivmaze is a terminal trivia maze: walk from the top-left room to the
// bottom-right one, answering a question at every door. A wrong answer seals
// the door for good, and the game is lost once the exit cannot be reached.
//
// Usage:
//
//	trivmaze play [mode]         - Play a mode, or pick one from the menu
//	trivmaze play --load <id>    - Resume a saved game
//	trivmaze serve               - Start SSH server for remote play
//	trivmaze scores [mode]       - Show high scores
//	trivmaze saves               - List, show or delete saved games
//	trivmaze modes               - List available modes
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible question order
//	--db <path>          - Set database path (default: ~/.trivmaze/trivmaze.db)
//	--config <path>      - Custom maze config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trivia-maze/internal/core"
	"github.com/vovakirdan/trivia-maze/internal/games/triviamaze"
)

const (
	envDB       = "TRIVMAZE_DB"
	envSSHAddr  = "TRIVMAZE_SSH_ADDR"
	envLogLevel = "TRIVMAZE_LOG_LEVEL"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trivmaze",
	Short: "Trivia Maze - answer your way out of a maze in your terminal",
	Long: `Trivia Maze is a terminal game: every door between two rooms asks a
trivia question. Answer correctly to pass; answer wrong and the door is
sealed forever. Reach the bottom-right room to escape. If every route to
the exit is sealed, you lose.

Available commands:
  play     - Play a mode (or pick one from the menu)
  serve    - Start SSH server for remote play
  scores   - View high scores
  saves    - Manage saved games
  modes    - Show all available modes

Examples:
  trivmaze play
  trivmaze play quick
  trivmaze play --load 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  trivmaze serve --ssh :2222
  trivmaze scores classic`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.trivmaze/trivmaze.db", "Path to scores and saves database (env "+envDB+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error (env "+envLogLevel+")")

	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(savesCmd)
}

// setup loads .env, applies environment defaults to flags the user did not
// set, and configures the default logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	envDefault(cmd, "db", envDB, &flagDBPath)
	envDefault(cmd, "log-level", envLogLevel, &flagLogLevel)
	if cmd.Flags().Lookup("ssh") != nil {
		envDefault(cmd, "ssh", envSSHAddr, &flagSSHAddr)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)
	log.SetPrefix("trivmaze")

	triviamaze.SetConfigPath(flagConfig)
	return nil
}

// envDefault copies an environment variable into a flag value unless the
// flag was given on the command line.
func envDefault(cmd *cobra.Command, flag, env string, dst *string) {
	if cmd.Flags().Changed(flag) {
		return
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}

// fileLogger returns a logger writing to ~/.trivmaze/trivmaze.log, used
// while the terminal belongs to the game. The caller closes the returned
// closer.
func fileLogger() (*log.Logger, io.Closer) {
	discard := log.New(io.Discard)

	home, err := os.UserHomeDir()
	if err != nil {
		return discard, io.NopCloser(nil)
	}
	dir := filepath.Join(home, ".trivmaze")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, io.NopCloser(nil)
	}
	f, err := os.OpenFile(filepath.Join(dir, "trivmaze.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, io.NopCloser(nil)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "trivmaze",
		Level:           log.GetLevel(),
	})
	return logger, f
}
