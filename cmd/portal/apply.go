package main

import (
	"fmt"

	"github.com/lafaom-mao/portal/internal/submission"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <job-offer-id>",
	Short: "Apply to a job offer",
	Long: "Apply to a job offer: fill in the applicant form, upload the documents " +
		"the offer requires and submit the application in one run.",
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

var applyFlags submitFlags

func init() {
	applyFlags.register(applyCmd)
	applyCmd.Flags().StringVar(&applyFlags.civility, "civility", "", "Civility identifier")

	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	offer, err := a.client.JobOffer(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Applying to %s (%s)\n", offer.Title, offer.Reference)

	form := submission.NewForm(offer.RequiredAttachments)
	if err := applyFlags.fill(form); err != nil {
		return err
	}

	return runSubmission(cmd, a, submission.Target{JobOfferID: offer.ID}, form, applyFlags.autoPay)
}
