package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/baghchal/pkg/config"
)

// baghchal config
func Config() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the configuration in use",
		Args:  cobra.NoArgs,

		// An invalid file must not stop the config commands, since they
		// are how it gets inspected and replaced.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if path, err := loadSettings(cmd); err != nil {
				logrus.WithField("path", path).WithError(err).Warn("Invalid configuration file, using defaults")
			}

			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, settings)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`init writes the default configuration to the configuration
			file so that it can be edited. An existing file is left as
			it is.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")

			created, err := config.Init(path)
			if err != nil {
				return err
			}

			if !created {
				logrus.WithField("path", path).Warn("Configuration file already exists")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	})

	return cmd
}
