package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/utils"
	"github.com/MKhiriev/trade-journal/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// createUserBody is the wire form of a user creation request. Unlike
// models.UserRequest it carries the password in clear.
type createUserBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu       sync.RWMutex
	username string
	password models.Secret

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// address may omit the scheme, in which case http is assumed. A zero
// timeout leaves requests bounded only by their context.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetCredentials implements [ServerAdapter].
func (h *httpServerAdapter) SetCredentials(username string, password models.Secret) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.password.Wipe()
	h.username = username
	h.password = models.NewSecretFromBytes(password.Expose())
}

// CreateUser implements [ServerAdapter]. It POSTs request to /users with
// the stored Basic credentials.
func (h *httpServerAdapter) CreateUser(ctx context.Context, request models.UserRequest) (models.User, error) {
	var created models.User

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(createUserBody{
			Username: request.Username,
			Email:    request.Email,
			Password: string(request.Password.Expose()),
		}).
		SetResult(&created).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("func", "*httpServerAdapter.CreateUser").Msg("server rejected user creation")
		return models.User{}, err
	}

	return created, nil
}

// GetUser implements [ServerAdapter].
func (h *httpServerAdapter) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("user_id", id.String()).
		SetResult(&user).
		Get("/users/{user_id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListUsers implements [ServerAdapter].
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&users).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// GetServerVersion implements [ServerAdapter].
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// HealthCheck implements [ServerAdapter].
func (h *httpServerAdapter) HealthCheck(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health_check")
	if err != nil {
		return fmt.Errorf("health check request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.username == "" && h.password.IsEmpty() {
		return nil, fmt.Errorf("%w: no credentials set", ErrUnauthorized)
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", utils.BasicAuthHeader(h.username, h.password)), nil
}
