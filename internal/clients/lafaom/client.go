package lafaom

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://lafaom.vertex-cam.com/api/v1"

const defaultTimeout = 30 * time.Second

const (
	epAuthToken             = "/auth/token"
	epAuthMe                = "/auth/me"
	epTrainings             = "/trainings"
	epTrainingSessions      = "/training-sessions"
	epStudentApplications   = "/student-applications"
	epMyStudentApplications = "/my-student-applications"
	epBlogPosts             = "/blog/posts"
	epJobOffers             = "/job-offers"
	epJobApplications       = "/job-applications"
	epJobAttachments        = "/job-attachments"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource supplies the bearer token for protected endpoints. The second
// return value is false when no session exists; the request is then sent
// without an Authorization header.
type TokenSource interface {
	Token() (string, bool)
}

type Client struct {
	baseURL     string
	httpClient  HTTPClient
	tokens      TokenSource
	rateLimiter *rate.Limiter
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) url(endpoint string) string {
	return c.baseURL + endpoint
}

type requestOptions struct {
	contentType string
	authed      bool
}

func (c *Client) sendRequest(ctx context.Context, method, url string, body io.Reader, opts requestOptions) ([]byte, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Accept", "application/json")
	if opts.contentType != "" {
		req.Header.Set("Content-Type", opts.contentType)
	}

	if opts.authed && c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	return handleResponse(resp)
}

func handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newHTTPError(resp.StatusCode, body)
	}

	return body, nil
}
