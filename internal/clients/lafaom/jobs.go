package lafaom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lafaom-mao/portal/internal/entities"
)

func (c *Client) JobOffers(ctx context.Context, params PageParams) (*Page[entities.JobOffer], error) {

	body, err := c.sendRequest(ctx, http.MethodGet, c.url(epJobOffers)+"?"+params.values().Encode(), nil,
		requestOptions{})
	if err != nil {
		return nil, err
	}

	return decodePage[entities.JobOffer](body, params.effectivePageSize())
}

func (c *Client) JobOffer(ctx context.Context, id string) (*entities.JobOffer, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, c.url(epJobOffers)+"/"+id, nil, requestOptions{})
	if err != nil {
		return nil, err
	}

	return decodeRecord[entities.JobOffer](body)
}

// JobApplicationRequest is the record-creation payload for a job offer. The
// attachments slice holds server-issued references; the workflow guarantees
// every file was uploaded before this payload is assembled.
type JobApplicationRequest struct {
	JobOfferID  string                   `json:"job_offer_id"`
	FirstName   string                   `json:"first_name"`
	LastName    string                   `json:"last_name"`
	Email       string                   `json:"email"`
	PhoneNumber string                   `json:"phone_number"`
	CountryCode string                   `json:"country_code"`
	CivilityID  string                   `json:"civility,omitempty"`
	Attachments []entities.AttachmentRef `json:"attachments"`
}

// SubmissionResult is the terminal server answer for both job applications
// and student enrollments. Payment is nil when no fee is due.
type SubmissionResult struct {
	JobApplication     *entities.JobApplication     `json:"job_application"`
	StudentApplication *entities.StudentApplication `json:"student_application"`
	Payment            *entities.Payment            `json:"payment"`
}

// ApplicationNumber returns the human-facing reference from whichever record
// the server created.
func (r *SubmissionResult) ApplicationNumber() string {
	if r.JobApplication != nil {
		return r.JobApplication.ApplicationNumber
	}
	if r.StudentApplication != nil {
		return r.StudentApplication.ApplicationNumber
	}
	return ""
}

func (c *Client) CreateJobApplication(ctx context.Context, req JobApplicationRequest) (*SubmissionResult, error) {

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	body, err := c.sendRequest(ctx, http.MethodPost, c.url(epJobApplications), bytes.NewReader(reqBody),
		requestOptions{contentType: "application/json"})
	if err != nil {
		return nil, err
	}

	return decodeSubmissionResult(body)
}

func decodeSubmissionResult(body []byte) (*SubmissionResult, error) {

	envelope, err := normalizeEnvelope(body)
	if err != nil {
		return nil, err
	}

	var result SubmissionResult
	if err := json.Unmarshal(envelope.Data, &result); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}
	return &result, nil
}
