package main

import (
	"fmt"
	"time"

	"github.com/lafaom-mao/portal/internal/consent"
	"github.com/spf13/cobra"
)

var consentCmd = &cobra.Command{
	Use:   "consent",
	Short: "Show or change cookie consent",
	RunE:  runConsentStatus,
}

var consentAcceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Accept all cookie categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return saveConsent(consent.AcceptAll())
	},
}

var consentRefuseCmd = &cobra.Command{
	Use:   "refuse",
	Short: "Refuse everything but necessary cookies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return saveConsent(consent.RefuseAll())
	},
}

var consentSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Pick cookie categories one by one",
	RunE:  runConsentSet,
}

var consentResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the stored consent choice",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		if err := a.consent.Reset(); err != nil {
			return err
		}
		fmt.Println("Consent choice forgotten")
		return nil
	},
}

var (
	consentAnalytics   bool
	consentMarketing   bool
	consentPreferences bool
)

func init() {
	consentSetCmd.Flags().BoolVar(&consentAnalytics, "analytics", false, "Allow analytics cookies")
	consentSetCmd.Flags().BoolVar(&consentMarketing, "marketing", false, "Allow marketing cookies")
	consentSetCmd.Flags().BoolVar(&consentPreferences, "preferences", false, "Allow preference cookies")

	consentCmd.AddCommand(consentAcceptCmd)
	consentCmd.AddCommand(consentRefuseCmd)
	consentCmd.AddCommand(consentSetCmd)
	consentCmd.AddCommand(consentResetCmd)
	rootCmd.AddCommand(consentCmd)
}

func runConsentStatus(cmd *cobra.Command, args []string) error {

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	record, err := a.consent.Load()
	if err != nil {
		return err
	}
	if record == nil {
		fmt.Println("No consent recorded")
		return nil
	}

	fmt.Printf("Consent: %s (recorded %s)\n", record.State(), record.Timestamp.Format(time.DateOnly))
	fmt.Printf("  necessary:   %v\n", record.Necessary)
	fmt.Printf("  analytics:   %v\n", record.Analytics)
	fmt.Printf("  marketing:   %v\n", record.Marketing)
	fmt.Printf("  preferences: %v\n", record.Preferences)
	return nil
}

func runConsentSet(cmd *cobra.Command, args []string) error {
	return saveConsent(consent.Record{
		Necessary:   true,
		Analytics:   consentAnalytics,
		Marketing:   consentMarketing,
		Preferences: consentPreferences,
	})
}

func saveConsent(record consent.Record) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.consent.Save(record); err != nil {
		return err
	}
	fmt.Printf("Consent saved: %s\n", record.State())
	return nil
}
