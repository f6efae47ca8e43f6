package lafaom

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

type staticTokens struct {
	token string
}

func (s *staticTokens) Token() (string, bool) {
	return s.token, s.token != ""
}

func responseFromFile(name string) (*http.Response, error) {
	file, err := os.ReadFile("testdata/" + name)

	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewBuffer(file)),
	}, err
}

func Test_Client_Login_ShouldBeSuccessful(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodPost &&
			req.URL.String() == DefaultBaseURL+"/auth/token"
	})).Return(responseFromFile("login.json"))

	client := NewClient("")
	client.SetHTTPClient(mockClient)

	payload, err := client.Login(context.Background(), "awa.ndiaye@example.com", "secret")
	assert.NoError(err)
	assert.Equal("eyJhbGciOiJIUzI1NiJ9.e30.sig", payload.AccessToken.Token)
	assert.Equal("Awa", payload.User.FirstName)
	assert.Equal("awa.ndiaye@example.com", payload.User.Email)
}

func Test_Client_Login_EmptyTokenIsAnError(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(strings.NewReader(`{"access_token": {"token": ""}}`)),
	}, nil)

	client := NewClient("")
	client.SetHTTPClient(mockClient)

	_, err := client.Login(context.Background(), "a@b.c", "secret")
	assert.Error(t, err)
}

func Test_Client_BlogPosts_ShouldBeSuccessful(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == DefaultBaseURL+"/blog/posts?asc=asc&is_published=true&"+
			"order_by=created_at&page=1&page_size=20"
	})).Return(responseFromFile("blog_posts.json"))

	client := NewClient("")
	client.SetHTTPClient(mockClient)

	page, err := client.BlogPosts(context.Background(), PageParams{})
	assert.NoError(err)

	assert.Len(page.Items, 2)
	assert.Equal("post-1", page.Items[0].ID)
	assert.Equal("Nouvelles sessions de formation ouvertes", page.Items[0].Title)
	assert.Equal(45, page.Total)
	assert.Equal(3, page.TotalPages)
}

func Test_Client_BlogPosts_BareArrayIsAccepted(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(strings.NewReader(`[{"id": "post-1", "title": "t"}]`)),
	}, nil)

	client := NewClient("")
	client.SetHTTPClient(mockClient)

	page, err := client.BlogPosts(context.Background(), PageParams{})
	assert.NoError(err)
	assert.Len(page.Items, 1)
	assert.Equal(1, page.Total)
	assert.Equal(1, page.TotalPages)
}

func Test_Client_JobOffers_ShouldBeSuccessful(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == DefaultBaseURL+"/job-offers?asc=asc&"+
			"order_by=created_at&page=1&page_size=20"
	})).Return(responseFromFile("job_offers.json"))

	client := NewClient("")
	client.SetHTTPClient(mockClient)

	page, err := client.JobOffers(context.Background(), PageParams{})
	assert.NoError(err)

	assert.Len(page.Items, 1)
	offer := page.Items[0]
	assert.Equal("OFF-2025-001", offer.Reference)
	assert.Equal("Douala", offer.Location)
	assert.Equal([]entities.AttachmentType{entities.AttachmentCV, entities.AttachmentCoverLetter},
		offer.RequiredAttachments)
}

func Test_Client_JobOffer_NotFound(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: 404,
		Body:       io.NopCloser(strings.NewReader(`{"message": "not found"}`)),
	}, nil)

	client := NewClient("")
	client.SetHTTPClient(mockClient)

	_, err := client.JobOffer(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func Test_Client_ServerErrorMessageIsSurfaced(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: 422,
		Body:       io.NopCloser(strings.NewReader(`{"message": "submission deadline passed"}`)),
	}, nil)

	client := NewClient("")
	client.SetHTTPClient(mockClient)

	_, err := client.CreateJobApplication(context.Background(), JobApplicationRequest{})
	assert.EqualError(t, err, "submission deadline passed")

	var httpErr *HTTPError
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 422, httpErr.Status)
}

func Test_Client_UploadJobAttachment_SendsMultipartNameAndFile(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		if req.URL.String() != DefaultBaseURL+"/job-attachments" {
			return false
		}
		if err := req.ParseMultipartForm(1 << 20); err != nil {
			return false
		}
		if req.MultipartForm.Value["name"][0] != "CV" {
			return false
		}
		_, ok := req.MultipartForm.File["file"]
		return ok
	})).Return(responseFromFile("upload_attachment.json"))

	client := NewClient("")
	client.SetHTTPClient(mockClient)

	ref, err := client.UploadJobAttachment(context.Background(), entities.AttachmentCV,
		"cv.pdf", strings.NewReader("%PDF-1.4"))
	assert.NoError(err)
	assert.Equal(entities.AttachmentCV, ref.Type)
	assert.Equal("https://storage.example.com/job-attachments/a1b2c3.pdf", ref.URL)
}

func Test_Client_CreateStudentApplication_ReturnsPayment(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodPost &&
			req.URL.String() == DefaultBaseURL+"/student-applications"
	})).Return(responseFromFile("student_application_payment.json"))

	client := NewClient("")
	client.SetHTTPClient(mockClient)

	result, err := client.CreateStudentApplication(context.Background(), StudentApplicationRequest{
		TargetSessionID: "session-3",
	})
	assert.NoError(err)
	assert.Equal("APP-2025-009", result.ApplicationNumber())
	assert.True(result.Payment.Required())
	assert.Equal(float64(50), result.Payment.Amount)
	assert.Equal("https://pay.example.com/checkout/xyz", result.Payment.PaymentLink)
}

func Test_Client_MyStudentApplications_SendsBearerToken(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("Authorization") == "Bearer token-123" &&
			strings.HasPrefix(req.URL.String(), DefaultBaseURL+"/my-student-applications?")
	})).Return(responseFromFile("my_applications.json"))

	client := NewClient("")
	client.SetHTTPClient(mockClient)
	client.SetTokenSource(&staticTokens{token: "token-123"})

	page, err := client.MyStudentApplications(context.Background(), PageParams{})
	assert.NoError(err)
	assert.Len(page.Items, 2)
	assert.Equal(entities.ApplicationAccepted, page.Items[1].Status)
}

func Test_Client_NetworkFailure_IsWrapped(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return((*http.Response)(nil), errors.New("connection refused"))

	client := NewClient("")
	client.SetHTTPClient(mockClient)

	_, err := client.BlogPosts(context.Background(), PageParams{})

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}
