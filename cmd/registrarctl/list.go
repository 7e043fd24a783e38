package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

func newListCmd(sess *session) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print a collection as a table",
		Long: `Print a collection as a table.

Examples:
  registrarctl list course-types
  registrarctl list offerings --course-type <id>
  registrarctl list registrations --offering <id>`,
	}

	listCmd.AddCommand(
		&cobra.Command{
			Use:   "course-types",
			Short: "List course types",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				courseTypes, err := sess.services.CourseTypes.GetAllCourseTypes(cmd.Context())
				if err != nil {
					return err
				}
				return renderNamed(cmd.OutOrStdout(), "Course types", courseTypes)
			},
		},
		&cobra.Command{
			Use:   "courses",
			Short: "List courses",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				courses, err := sess.services.Courses.GetAllCourses(cmd.Context())
				if err != nil {
					return err
				}
				return renderNamed(cmd.OutOrStdout(), "Courses", courses)
			},
		},
		newListOfferingsCmd(sess),
		newListRegistrationsCmd(sess),
	)
	return listCmd
}

func newListOfferingsCmd(sess *session) *cobra.Command {
	var courseTypeID string

	cmd := &cobra.Command{
		Use:   "offerings",
		Short: "List course offerings with their registration counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := sess.services.CourseOfferings.GetOfferingSummaries(cmd.Context(), courseTypeID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printTitle(out, "Course offerings", len(summaries))
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"ID", "Name", "Course Type", "Course", "Registrations"})
			for _, s := range summaries {
				table.Append([]string{s.ID, s.Name, s.CourseTypeName, s.CourseName, strconv.Itoa(s.RegistrationCount)})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&courseTypeID, "course-type", "", "Only offerings of this course type ID")
	return cmd
}

func newListRegistrationsCmd(sess *session) *cobra.Command {
	var offeringID string

	cmd := &cobra.Command{
		Use:   "registrations",
		Short: "List student registrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				registrations []models.Registration
				err           error
			)
			if cmd.Flags().Changed("offering") {
				registrations, err = sess.services.Registrations.GetRegistrationsByOffering(cmd.Context(), offeringID)
			} else {
				registrations, err = sess.services.Registrations.GetAllRegistrations(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printTitle(out, "Registrations", len(registrations))
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"ID", "Student", "Email", "Phone", "Offering", "Date"})
			for _, r := range registrations {
				table.Append([]string{
					r.ID,
					r.StudentName,
					r.StudentEmail,
					r.StudentPhone,
					r.OfferingName,
					helpers.FormatDate(r.RegistrationDate),
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&offeringID, "offering", "", "Only registrations of this course offering ID")
	return cmd
}

func renderNamed[T models.Named](out io.Writer, title string, rows []T) error {
	printTitle(out, title, len(rows))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Name"})
	for _, row := range rows {
		table.Append([]string{row.GetID(), row.GetName()})
	}
	table.Render()
	return nil
}

func printTitle(out io.Writer, title string, count int) {
	color.New(color.FgCyan, color.Bold).Fprintf(out, "%s (%d)\n", title, count)
	if count == 0 {
		fmt.Fprintln(out, "No entries")
	}
}
