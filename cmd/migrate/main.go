package main

import (
	"os"

	"hotel/config"
	"hotel/helper"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func actionCmd(action helper.Action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(action),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return helper.Runner(config.Get(), action)
		},
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Run the hotel database migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Configure(config.Get())
		},
	}

	rootCmd.AddCommand(
		actionCmd(helper.ActionUp, "Apply all up migrations"),
		actionCmd(helper.ActionDown, "Roll back the latest migration"),
		actionCmd(helper.ActionStepUp, "Apply the next migration"),
		actionCmd(helper.ActionDrop, "Roll back every migration"),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
}
