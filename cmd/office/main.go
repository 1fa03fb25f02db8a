package main

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/myrjola/theoffice/internal/errors"
	"github.com/spf13/cobra"
	"io/fs"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // build metadata

var gameGroup = &cobra.Group{
	ID:    "game",
	Title: "Game commands",
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level, overrides OFFICE_LOG_LEVEL")
	rootCmd.AddGroup(gameGroup)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:          "office",
	Short:        "Play The Office Game",
	Long:         `A text menu game set in the Scranton branch. Running office without a command starts a game.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         play,
}

var playCmd = &cobra.Command{
	Use:     "play",
	GroupID: "game",
	Short:   "Start a game",
	Long:    `Starts a game on stdin and stdout. Logs go to stderr.`,
	Args:    cobra.NoArgs,
	RunE:    play,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println(version)
	},
}

func play(cmd *cobra.Command, _ []string) error {
	if err := loadDotEnv(); err != nil {
		return err
	}
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return errors.Wrap(err, "read log-level flag")
	}
	lookupEnv := withOverride(os.LookupEnv, logLevelEnv, logLevel)
	return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), lookupEnv)
}

// loadDotEnv loads .env from the working directory if there is one.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "load .env")
	}
	return nil
}

// withOverride returns a lookup that answers key with value when value is non-empty and defers to lookupEnv
// otherwise.
func withOverride(lookupEnv func(string) (string, bool), key, value string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		if k == key && value != "" {
			return value, true
		}
		return lookupEnv(k)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
