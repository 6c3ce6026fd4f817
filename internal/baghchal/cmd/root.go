// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/baghchal/pkg/config"
)

const Version = "v0.1.0"

// settings holds the configuration loaded before any command runs.
var settings = config.Default()

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "baghchal",
		Short: "Play Bagh Chal, the tigers and goats game, at the terminal",
		Long: heredoc.Doc(`baghchal is a rules engine and terminal interface for a
			simplified game of Bagh Chal, played on a 5x5 grid between
			four Tigers and twenty Goats.

			Pieces step to an orthogonally adjacent empty intersection.
			The game ends when five goats have been captured, when the
			goats' reserve runs out, or when fewer than two tigers are
			left on the board.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, err := loadSettings(cmd)
			if err != nil {
				return fmt.Errorf("%w\nhint: fix or remove %s, or pick another file with --config", err, path)
			}

			return nil
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Baghchal's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", config.File, "Path to the configuration file")

	root.SetVersionTemplate(Version + "\n")
	root.Version = Version

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Moves())
	root.AddCommand(Perft())
	root.AddCommand(Config())

	return root
}

// loadSettings reads the configuration file named by the --config flag
// into settings and sets up the log level. The defaults are used when the
// file is invalid.
func loadSettings(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("config")

	var err error
	if settings, err = config.Load(path); err != nil {
		settings = config.Default()
	}

	level, _ := settings.Level()
	logrus.SetLevel(level)

	// If --trace flag is provided, set logging level to Trace.
	if cmd.Flag("trace").Changed {
		logrus.SetLevel(logrus.TraceLevel)
	}

	if err != nil {
		return path, err
	}

	logrus.WithField("config", path).Trace("Loaded configuration")
	return path, nil
}

// Execute sets up logging and runs the command tree with the given
// arguments.
func Execute(args []string) error {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	root := Root()
	root.SetArgs(args)
	return root.Execute()
}
