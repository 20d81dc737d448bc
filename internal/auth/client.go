package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"scan-kart/internal/model"

	"github.com/rs/zerolog"
)

const (
	contentTypeJSON   = "application/json"
	contentTypeLDJSON = "application/ld+json"
)

// Endpoints are the backend routes used by the client.
type Endpoints struct {
	Login  string
	Signup string
}

// Client authenticates against the backend and records the outcome in a
// Session.
type Client struct {
	endpoints Endpoints
	http      *http.Client
	session   *Session
	logger    zerolog.Logger
}

// NewClient creates an auth client.
func NewClient(endpoints Endpoints, timeout time.Duration, session *Session, logger zerolog.Logger) *Client {
	return &Client{
		endpoints: endpoints,
		http:      &http.Client{Timeout: timeout},
		session:   session,
		logger:    logger.With().Str("component", "auth").Logger(),
	}
}

// backendError covers the error bodies of the login route and of the
// hydra-formatted clients route.
type backendError struct {
	Message     string `json:"message"`
	Description string `json:"hydra:description"`
	Detail      string `json:"detail"`
}

// Login posts the credentials to the backend. Empty fields are rejected
// without a request. On success the session is marked logged in.
func (c *Client) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.ErrMissingCredentials
	}

	status, be, err := c.post(ctx, c.endpoints.Login, contentTypeJSON, model.LoginRequest{Email: email, Password: password})
	if err != nil {
		c.logger.Warn().Err(err).Msg("login request failed")
		return fmt.Errorf("failed to reach login service: %w", err)
	}

	if status < 200 || status > 299 {
		message := model.ErrInvalidCredentials.Message
		if be.Message != "" {
			message = be.Message
		}

		c.logger.Info().
			Int("status", status).
			Str("message", message).
			Msg("login rejected")
		return model.NewDomainError(model.ErrCodeInvalidCredentials, message)
	}

	c.session.SetLogged(true)
	c.logger.Info().Msg("operator logged in")

	return nil
}

// Signup creates an account on the backend. It does not log in.
func (c *Client) Signup(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.ErrMissingCredentials
	}

	status, be, err := c.post(ctx, c.endpoints.Signup, contentTypeLDJSON, model.SignupRequest{Email: email, Password: password})
	if err != nil {
		c.logger.Warn().Err(err).Msg("signup request failed")
		return fmt.Errorf("failed to reach signup service: %w", err)
	}

	if status < 200 || status > 299 {
		message := model.ErrSignupRejected.Message
		switch {
		case be.Description != "":
			message = be.Description
		case be.Detail != "":
			message = be.Detail
		}

		c.logger.Info().
			Int("status", status).
			Str("message", message).
			Msg("signup rejected")
		return model.NewDomainError(model.ErrCodeSignupRejected, message)
	}

	c.logger.Info().Str("email", email).Msg("account created")

	return nil
}

// Logout clears the session.
func (c *Client) Logout() {
	c.session.SetLogged(false)
	c.logger.Info().Msg("operator logged out")
}

// post sends payload as JSON and returns the status code with whatever error
// body could be decoded. Only transport failures are returned as errors.
func (c *Client) post(ctx context.Context, url, contentType string, payload any) (int, backendError, error) {
	var be backendError

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, be, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, be, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, be, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		_ = json.Unmarshal(raw, &be)
	}

	return resp.StatusCode, be, nil
}
