package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/lafaom-mao/portal/internal/events"
	"github.com/lafaom-mao/portal/internal/submission"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// submitFlags carries the applicant fields shared by apply and enroll.
type submitFlags struct {
	firstName string
	lastName  string
	email     string
	phone     string
	country   string
	civility  string
	files     []string
	autoPay   bool
}

func (f *submitFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&f.email, "email", "", "Email address")
	cmd.Flags().StringVar(&f.phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&f.country, "country", "", "Country (name, ISO code or dial code)")
	cmd.Flags().StringArrayVar(&f.files, "file", nil, "Attachment as TYPE=path, e.g. CV=./cv.pdf")
	cmd.Flags().BoolVar(&f.autoPay, "open-payment", true, "Open the payment page in the browser when a fee is due")
}

// fill populates the form from flags, prompting for whatever is missing.
func (f *submitFlags) fill(form *submission.Form) error {

	reader := bufio.NewReader(os.Stdin)
	prompt := func(label string, value *string) error {
		if *value != "" {
			return nil
		}
		fmt.Printf("%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		*value = strings.TrimSpace(line)
		return nil
	}

	if err := prompt("First name", &f.firstName); err != nil {
		return err
	}
	if err := prompt("Last name", &f.lastName); err != nil {
		return err
	}
	if err := prompt("Email", &f.email); err != nil {
		return err
	}
	if err := prompt("Phone number", &f.phone); err != nil {
		return err
	}
	if err := prompt("Country", &f.country); err != nil {
		return err
	}

	form.FirstName = f.firstName
	form.LastName = f.lastName
	form.Email = f.email
	form.PhoneNumber = f.phone
	form.Country = f.country
	form.CivilityID = f.civility

	for _, pair := range f.files {
		attachmentType, path, found := strings.Cut(pair, "=")
		if !found {
			return errors.Errorf("invalid --file value %q, expected TYPE=path", pair)
		}
		if err := form.SetFile(entities.AttachmentType(strings.ToUpper(attachmentType)), path); err != nil {
			return err
		}
	}

	// Ask for any declared slot the flags left empty.
	for _, field := range form.Files {
		if field.Path != "" {
			continue
		}
		label := fmt.Sprintf("%s file", field.Type)
		if !field.Required {
			label += " (optional, leave empty to skip)"
		}
		var path string
		if err := prompt(label, &path); err != nil {
			return err
		}
		if path != "" {
			if err := form.SetFile(field.Type, path); err != nil {
				return err
			}
		}
	}

	return nil
}

// runSubmission executes the workflow with progress reporting and handles
// the payment terminal state.
func runSubmission(cmd *cobra.Command, a *app, target submission.Target,
	form *submission.Form, autoPay bool) error {

	bus := EventBus.New()
	err := bus.Subscribe(events.SubmissionTransitionTopic, func(event events.SubmissionTransition) {
		fmt.Printf("  %s\n", describeTransition(event))
	})
	if err != nil {
		return err
	}

	runID := fmt.Sprintf("run-%d", time.Now().UnixNano())
	workflow := submission.NewWorkflow(a.client, bus, runID)
	workflow.Open()

	if err := workflow.Run(cmd.Context(), target, form); err != nil {
		return err
	}

	fmt.Printf("\nApplication %s submitted.\n", workflow.Result().ApplicationNumber())

	payment := workflow.Payment()
	if !payment.Required() {
		return nil
	}

	fmt.Printf("A fee of %.0f %s is due: %s\n", payment.Amount, payment.Currency, payment.PaymentLink)
	if autoPay {
		if err := openBrowser(payment.PaymentLink); err != nil {
			fmt.Println("Could not open the browser, follow the link above to pay.")
		}
	}
	return nil
}

func describeTransition(event events.SubmissionTransition) string {
	if event.Note != "" {
		return fmt.Sprintf("%s (%s)", event.To, event.Note)
	}
	return event.To
}

func openBrowser(link string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", link).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", link).Start()
	default:
		return exec.Command("xdg-open", link).Start()
	}
}
