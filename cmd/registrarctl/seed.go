package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yigit/registrar/internal/seed"
)

func newSeedCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default course types when none exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := seed.CreateDefaultData(cmd.Context(), sess.services.CourseTypes, sess.logger)
			if err != nil {
				return err
			}
			if created == 0 {
				color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "Course types already present, nothing seeded")
				return nil
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Seeded %d course types\n", created)
			return nil
		},
	}
}
