package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lafaom-mao/portal/internal/catalog"
	"github.com/lafaom-mao/portal/internal/clients/lafaom"
	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/lafaom-mao/portal/internal/store"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List open job offers",
	RunE:  runJobs,
}

var jobsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one job offer in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsShow,
}

var (
	jobsPage      int
	jobsSearch    string
	jobsLocation  string
	jobsContract  string
	jobsMinSalary float64
)

func init() {
	jobsCmd.Flags().IntVar(&jobsPage, "page", 1, "Page to display")
	jobsCmd.Flags().StringVar(&jobsSearch, "search", "", "Text search over title, mission and profile")
	jobsCmd.Flags().StringVar(&jobsLocation, "location", "", "Only offers at this location")
	jobsCmd.Flags().StringVar(&jobsContract, "contract", "", "Only offers with this contract type")
	jobsCmd.Flags().Float64Var(&jobsMinSalary, "min-salary", 0, "Only offers paying at least this much")

	jobsCmd.AddCommand(jobsShowCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	snapshots, err := a.openDb()
	if err != nil {
		return err
	}

	list := catalog.NewListWithSnapshots(store.CollectionJobs,
		func(ctx context.Context, page int) (*lafaom.Page[entities.JobOffer], error) {
			return a.client.JobOffers(ctx, lafaom.PageParams{Page: page})
		},
		snapshots,
		func(o entities.JobOffer) string { return o.ID })

	if err := list.Load(cmd.Context(), jobsPage); err != nil {
		return err
	}

	list.Filter(func(o entities.JobOffer) bool {
		return catalog.MatchesSearch(jobsSearch, o.Title, o.MainMission, o.Profile) &&
			catalog.MatchesExact(jobsLocation, o.Location) &&
			catalog.MatchesExact(jobsContract, o.ContractType) &&
			o.Salary >= jobsMinSalary
	})

	list.Render(os.Stdout, renderJobCard)
	return nil
}

func renderJobCard(w io.Writer, offer entities.JobOffer) {
	fmt.Fprintf(w, "%s  %s (%s, %s)\n", offer.Reference, offer.Title, offer.Location, offer.ContractType)
	if offer.Salary > 0 {
		fmt.Fprintf(w, "    %.0f %s, %dh/week\n", offer.Salary, offer.Currency, offer.WeeklyHours)
	}
	fmt.Fprintf(w, "    apply before %s  (id %s)\n",
		offer.SubmissionDeadline.Format(time.DateOnly), offer.ID)
}

func runJobsShow(cmd *cobra.Command, args []string) error {

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	details := lafaom.NewCachedDetails(a.client)
	offer, err := details.JobOffer(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	w := os.Stdout
	fmt.Fprintf(w, "%s (%s)\n\n", offer.Title, offer.Reference)
	fmt.Fprintf(w, "Location:      %s\n", offer.Location)
	fmt.Fprintf(w, "Contract:      %s, %dh/week\n", offer.ContractType, offer.WeeklyHours)
	if offer.Salary > 0 {
		fmt.Fprintf(w, "Salary:        %.0f %s\n", offer.Salary, offer.Currency)
	}
	fmt.Fprintf(w, "Deadline:      %s\n", offer.SubmissionDeadline.Format(time.DateOnly))
	fmt.Fprintf(w, "Start date:    %s\n", offer.StartDate.Format(time.DateOnly))
	if offer.DrivingLicenseRequired {
		fmt.Fprintln(w, "Driving license required")
	}

	printSection := func(name, html string) {
		if html == "" {
			return
		}
		fmt.Fprintf(w, "\n%s\n  %s\n", name, catalog.StripHTML(html))
	}
	printSection("Main mission", offer.MainMission)
	printSection("Responsibilities", offer.Responsibilities)
	printSection("Competencies", offer.Competencies)
	printSection("Profile", offer.Profile)
	printSection("Conditions", offer.Conditions)

	if len(offer.RequiredAttachments) > 0 {
		fmt.Fprintf(w, "\nAttachments to provide: ")
		for i, attachmentType := range offer.RequiredAttachments {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprint(w, string(attachmentType))
		}
		fmt.Fprintln(w)
	}
	return nil
}
