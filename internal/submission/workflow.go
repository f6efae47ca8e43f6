package submission

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/asaskevich/EventBus"
	"github.com/lafaom-mao/portal/internal/clients/lafaom"
	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/lafaom-mao/portal/internal/events"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type State string

const (
	StateIdle                 State = "Idle"
	StateFormOpen             State = "FormOpen"
	StateValidating           State = "Validating"
	StateUploading            State = "UploadingAttachments"
	StateSubmitting           State = "SubmittingRecord"
	StateSucceeded            State = "SucceededNoPayment"
	StateSucceededWithPayment State = "SucceededPaymentRequired"
	StateFailed               State = "Failed"
)

type apiClient interface {
	UploadJobAttachment(ctx context.Context, attachmentType entities.AttachmentType,
		filename string, content io.Reader) (*entities.AttachmentRef, error)
	CreateJobApplication(ctx context.Context, req lafaom.JobApplicationRequest) (*lafaom.SubmissionResult, error)
	CreateStudentApplication(ctx context.Context, req lafaom.StudentApplicationRequest) (*lafaom.SubmissionResult, error)
}

// Target names what a run submits to: one job offer or one training session.
// Exactly one field is set.
type Target struct {
	JobOfferID      string
	TargetSessionID string
}

// Workflow drives one submission from an open form to a terminal state.
// Every run is sequential: validation, then uploads one by one, then the
// record call. The first failing step ends the run.
type Workflow struct {
	client apiClient
	bus    EventBus.Bus

	runID  string
	state  State
	result *lafaom.SubmissionResult
	err    error
}

func NewWorkflow(client apiClient, bus EventBus.Bus, runID string) *Workflow {
	return &Workflow{
		client: client,
		bus:    bus,
		runID:  runID,
		state:  StateIdle,
	}
}

func (w *Workflow) State() State                     { return w.state }
func (w *Workflow) Result() *lafaom.SubmissionResult { return w.result }
func (w *Workflow) Err() error                       { return w.err }

// Payment returns the fee details when the run ended in
// SucceededPaymentRequired, nil otherwise.
func (w *Workflow) Payment() *entities.Payment {
	if w.result == nil {
		return nil
	}
	return w.result.Payment
}

// Open marks the form as presented to the applicant.
func (w *Workflow) Open() {
	w.transition(StateFormOpen, "")
}

// Run executes the whole submission. Cancelling ctx abandons the run where
// it stands; no further transitions fire after that.
func (w *Workflow) Run(ctx context.Context, target Target, form *Form) error {

	w.transition(StateValidating, "")
	if err := form.Validate(); err != nil {
		return w.fail(ctx, err)
	}

	w.transition(StateUploading, fmt.Sprintf("%d files", countFiles(form)))
	refs, err := w.uploadAll(ctx, form)
	if err != nil {
		return w.fail(ctx, err)
	}

	w.transition(StateSubmitting, "")
	result, err := w.submit(ctx, target, form, refs)
	if err != nil {
		return w.fail(ctx, err)
	}
	w.result = result

	if result.Payment.Required() {
		w.transition(StateSucceededWithPayment, result.Payment.PaymentLink)
	} else {
		w.transition(StateSucceeded, result.ApplicationNumber())
	}
	return nil
}

// uploadAll sends the files strictly in slot order. Each upload must yield a
// server reference before the next file is touched.
func (w *Workflow) uploadAll(ctx context.Context, form *Form) ([]entities.AttachmentRef, error) {

	refs := make([]entities.AttachmentRef, 0, len(form.Files))
	for _, field := range form.Files {
		if field.Path == "" {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file, err := os.Open(field.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s file", field.Type)
		}

		ref, err := w.client.UploadJobAttachment(ctx, field.Type, filepath.Base(field.Path), file)
		_ = file.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to upload %s file %s", field.Type, filepath.Base(field.Path))
		}

		log.Debugf("uploaded %s as %s", field.Path, ref.URL)
		refs = append(refs, *ref)
	}
	return refs, nil
}

func (w *Workflow) submit(ctx context.Context, target Target, form *Form,
	refs []entities.AttachmentRef) (*lafaom.SubmissionResult, error) {

	if target.JobOfferID != "" {
		return w.client.CreateJobApplication(ctx, lafaom.JobApplicationRequest{
			JobOfferID:  target.JobOfferID,
			FirstName:   form.FirstName,
			LastName:    form.LastName,
			Email:       form.Email,
			PhoneNumber: form.PhoneNumber,
			CountryCode: form.CountryCode(),
			CivilityID:  form.CivilityID,
			Attachments: refs,
		})
	}

	return w.client.CreateStudentApplication(ctx, lafaom.StudentApplicationRequest{
		TargetSessionID: target.TargetSessionID,
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Email:           form.Email,
		PhoneNumber:     form.PhoneNumber,
		CountryCode:     form.CountryCode(),
		Attachments:     refs,
	})
}

func (w *Workflow) fail(ctx context.Context, err error) error {
	w.err = err
	if ctx.Err() == nil {
		w.transition(StateFailed, err.Error())
	}
	return err
}

func (w *Workflow) transition(to State, note string) {
	from := w.state
	w.state = to
	if w.bus != nil {
		w.bus.Publish(events.SubmissionTransitionTopic, events.SubmissionTransition{
			RunID: w.runID,
			From:  string(from),
			To:    string(to),
			Note:  note,
		})
	}
}

func countFiles(form *Form) int {
	count := 0
	for _, field := range form.Files {
		if field.Path != "" {
			count++
		}
	}
	return count
}
