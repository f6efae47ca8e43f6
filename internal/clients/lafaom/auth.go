package lafaom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lafaom-mao/portal/internal/entities"
)

type AccessToken struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// LoginPayload is the full authentication response; the session store
// persists it verbatim alongside the extracted token and user.
type LoginPayload struct {
	AccessToken AccessToken   `json:"access_token"`
	User        entities.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginPayload, error) {

	reqBody, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	body, err := c.sendRequest(ctx, http.MethodPost, c.url(epAuthToken), bytes.NewReader(reqBody),
		requestOptions{contentType: "application/json"})
	if err != nil {
		return nil, err
	}

	var payload LoginPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}

	if payload.AccessToken.Token == "" {
		return nil, fmt.Errorf("login response carried no access token")
	}

	return &payload, nil
}

func (c *Client) Me(ctx context.Context) (*entities.User, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, c.url(epAuthMe), nil, requestOptions{authed: true})
	if err != nil {
		return nil, err
	}

	return decodeRecord[entities.User](body)
}
