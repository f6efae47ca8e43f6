package main

import (
	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/lafaom-mao/portal/internal/submission"
	"github.com/spf13/cobra"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll <session-id>",
	Short: "Enroll into a training session",
	Long: "Enroll into a training session: fill in the applicant form, upload the " +
		"required documents and submit the enrollment in one run.",
	Args: cobra.ExactArgs(1),
	RunE: runEnroll,
}

var enrollFlags submitFlags

// Enrollments always ask for the same three documents.
var enrollmentAttachments = []entities.AttachmentType{
	entities.AttachmentCV,
	entities.AttachmentCoverLetter,
	entities.AttachmentDiploma,
}

func init() {
	enrollFlags.register(enrollCmd)

	rootCmd.AddCommand(enrollCmd)
}

func runEnroll(cmd *cobra.Command, args []string) error {

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	form := submission.NewForm(enrollmentAttachments)
	if err := enrollFlags.fill(form); err != nil {
		return err
	}

	return runSubmission(cmd, a, submission.Target{TargetSessionID: args[0]}, form, enrollFlags.autoPay)
}
