package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/lafaom-mao/portal/internal/catalog"
	"github.com/lafaom-mao/portal/internal/clients/lafaom"
	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/spf13/cobra"
)

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "List your training enrollments",
	RunE:  runApplications,
}

var applicationsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one enrollment in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runApplicationsShow,
}

var (
	applicationsPage     int
	applicationsPaidOnly bool
)

func init() {
	applicationsCmd.Flags().IntVar(&applicationsPage, "page", 1, "Page to display")
	applicationsCmd.Flags().BoolVar(&applicationsPaidOnly, "paid", true, "Only settled applications")

	applicationsCmd.AddCommand(applicationsShowCmd)
	rootCmd.AddCommand(applicationsCmd)
}

func runApplications(cmd *cobra.Command, args []string) error {

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.session.RequireAuth(); err != nil {
		return err
	}

	// Stale application rows would mislead, so this list never falls back
	// to stored data.
	list := catalog.NewList("applications",
		func(ctx context.Context, page int) (*lafaom.Page[entities.StudentApplication], error) {
			params := lafaom.PageParams{Page: page}
			if applicationsPaidOnly {
				params.Extra = url.Values{"is_paid": {"true"}}
			}
			return a.client.MyStudentApplications(ctx, params)
		})

	if err := list.Load(cmd.Context(), applicationsPage); err != nil {
		return err
	}

	list.Render(os.Stdout, renderApplicationRow)
	return nil
}

func renderApplicationRow(w io.Writer, application entities.StudentApplication) {
	fmt.Fprintf(w, "%s  %s  [%s]\n",
		application.ApplicationNumber, application.TrainingTitle, application.Status)
	fmt.Fprintf(w, "    session %s to %s, %.0f %s\n",
		application.SessionStartDate.Format(time.DateOnly),
		application.SessionEndDate.Format(time.DateOnly),
		application.TrainingFee+application.RegistrationFee, application.Currency)
	if application.Status == entities.ApplicationRejected && application.RefusalReason != "" {
		fmt.Fprintf(w, "    refused: %s\n", application.RefusalReason)
	}
	fmt.Fprintf(w, "    (id %s)\n", application.ID)
}

func runApplicationsShow(cmd *cobra.Command, args []string) error {

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.session.RequireAuth(); err != nil {
		return err
	}

	application, err := a.client.MyStudentApplication(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	w := os.Stdout
	fmt.Fprintf(w, "Application %s  [%s]\n\n", application.ApplicationNumber, application.Status)
	fmt.Fprintf(w, "Training:       %s\n", application.TrainingTitle)
	fmt.Fprintf(w, "Session:        %s to %s\n",
		application.SessionStartDate.Format(time.DateOnly),
		application.SessionEndDate.Format(time.DateOnly))
	fmt.Fprintf(w, "Training fee:   %.0f %s\n", application.TrainingFee, application.Currency)
	fmt.Fprintf(w, "Registration:   %.0f %s\n", application.RegistrationFee, application.Currency)
	fmt.Fprintf(w, "Submitted:      %s\n", application.CreatedAt.Format(time.DateOnly))
	if application.RefusalReason != "" {
		fmt.Fprintf(w, "Refusal reason: %s\n", application.RefusalReason)
	}

	if application.Training != nil {
		fmt.Fprintf(w, "\nAbout the training\n  %s\n", catalog.StripHTML(application.Training.Presentation))
	}
	return nil
}
