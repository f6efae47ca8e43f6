package lafaom

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/lafaom-mao/portal/internal/entities"
)

func (c *Client) Trainings(ctx context.Context, params PageParams) (*Page[entities.Training], error) {

	body, err := c.sendRequest(ctx, http.MethodGet, c.url(epTrainings)+"?"+params.values().Encode(), nil,
		requestOptions{})
	if err != nil {
		return nil, err
	}

	return decodePage[entities.Training](body, params.effectivePageSize())
}

func (c *Client) Training(ctx context.Context, id string) (*entities.Training, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, c.url(epTrainings)+"/"+id, nil, requestOptions{})
	if err != nil {
		return nil, err
	}

	return decodeRecord[entities.Training](body)
}

// TrainingSessions fetches the sessions scheduled for one training.
func (c *Client) TrainingSessions(ctx context.Context, trainingID string, params PageParams) (*Page[entities.TrainingSession], error) {

	if params.Extra == nil {
		params.Extra = url.Values{}
	}
	params.Extra.Set("training_id", trainingID)

	body, err := c.sendRequest(ctx, http.MethodGet, c.url(epTrainingSessions)+"?"+params.values().Encode(), nil,
		requestOptions{})
	if err != nil {
		return nil, err
	}

	return decodePage[entities.TrainingSession](body, params.effectivePageSize())
}

// StudentApplicationRequest enrolls an applicant into a training session.
type StudentApplicationRequest struct {
	TargetSessionID string                   `json:"target_session_id"`
	FirstName       string                   `json:"first_name"`
	LastName        string                   `json:"last_name"`
	Email           string                   `json:"email"`
	PhoneNumber     string                   `json:"phone_number"`
	CountryCode     string                   `json:"country_code"`
	Attachments     []entities.AttachmentRef `json:"attachments"`
}

func (c *Client) CreateStudentApplication(ctx context.Context, req StudentApplicationRequest) (*SubmissionResult, error) {

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	body, err := c.sendRequest(ctx, http.MethodPost, c.url(epStudentApplications), bytes.NewReader(reqBody),
		requestOptions{contentType: "application/json"})
	if err != nil {
		return nil, err
	}

	return decodeSubmissionResult(body)
}

// MyStudentApplications lists the signed-in user's enrollments.
func (c *Client) MyStudentApplications(ctx context.Context, params PageParams) (*Page[entities.StudentApplication], error) {

	body, err := c.sendRequest(ctx, http.MethodGet, c.url(epMyStudentApplications)+"?"+params.values().Encode(), nil,
		requestOptions{authed: true})
	if err != nil {
		return nil, err
	}

	return decodePage[entities.StudentApplication](body, params.effectivePageSize())
}

func (c *Client) MyStudentApplication(ctx context.Context, id string) (*entities.StudentApplication, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, c.url(epMyStudentApplications)+"/"+id, nil,
		requestOptions{authed: true})
	if err != nil {
		return nil, err
	}

	return decodeRecord[entities.StudentApplication](body)
}
