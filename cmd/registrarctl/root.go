package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/bootstrap"
)

// session is the storage opened for a single command invocation
type session struct {
	services *services.Services
	storage  io.Closer
	logger   zerolog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		sess    session
	)

	rootCmd := &cobra.Command{
		Use:           "registrarctl",
		Short:         "Inspect and seed registrar storage",
		Long:          `Reads the configured storage (memory, file, sqlite or postgres) and prints course types, courses, course offerings and registrations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Keep stdout for tables
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(cfgFile, os.Stderr)
			if err != nil {
				return err
			}

			slotStore, storage, err := bootstrap.SetupStorage(cmd.Context(), cfg, lgr)
			if err != nil {
				return err
			}
			st := bootstrap.LoadStore(cmd.Context(), slotStore, lgr)

			sess = session{
				services: services.NewServices(st, lgr),
				storage:  storage,
				logger:   lgr,
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if sess.storage == nil {
				return nil
			}
			return sess.storage.Close()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: configs/config.yaml)")

	rootCmd.AddCommand(newListCmd(&sess), newSeedCmd(&sess))
	return rootCmd
}
