package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/washpoint/staffops/internal/domain"
	"github.com/washpoint/staffops/internal/session"
)

// ErrUnauthorized is returned when the backend rejects the bearer token.
// The local session is already cleared by the time callers see it.
var ErrUnauthorized = errors.New("session rejected by platform backend")

// APIError is a business error reported by the backend. Its message is the
// server's own wording and is passed through to callers verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client issues typed HTTP calls against the platform backend. Every call
// attaches the bearer token from the session store. One fixed timeout covers
// all calls; there are no retries and no per-call overrides.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Store
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, sess *session.Store, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		session:    sess,
		logger:     logger,
	}
}

// ListStaffOrders fetches the order listing for the calling staff member's
// office scope.
func (c *Client) ListStaffOrders(ctx context.Context) ([]domain.Order, error) {
	var envelope ordersEnvelope
	if err := c.do(ctx, http.MethodGet, "/staff/office/orders", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Orders, nil
}

// ListTemporaryAssignments fetches the open load-balancing offers for an office.
func (c *Client) ListTemporaryAssignments(ctx context.Context, officeID string) ([]domain.TemporaryAssignment, error) {
	path := fmt.Sprintf("/staff/offices/%s/temporary-assignments", officeID)
	var envelope assignmentsEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Assignments, nil
}

// ListUserOrders fetches the orders accepted by a specific user. This
// endpoint still serves the legacy status vocabulary, so statuses are lifted
// into the canonical one before anything downstream sees them.
func (c *Client) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	path := fmt.Sprintf("/orders/user/%s", userID)
	var envelope userOrdersEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}

	orders := envelope.Orders
	for i := range orders {
		if orders[i].Status.IsValid() {
			continue
		}
		if lifted, ok := domain.FromLegacy(domain.LegacyStatus(orders[i].Status)); ok {
			orders[i].Status = lifted
		}
	}
	return orders, nil
}

// AcceptOrder claims an unassigned order into an office's queue. The backend
// echoes the resulting order; callers may log it but the store deliberately
// does not apply it.
func (c *Client) AcceptOrder(ctx context.Context, orderID, officeID string) (*domain.Order, error) {
	path := fmt.Sprintf("/staff/orders/%s/accept", orderID)
	var envelope acceptOrderEnvelope
	if err := c.do(ctx, http.MethodPost, path, acceptRequest{OfficeID: officeID}, &envelope); err != nil {
		return nil, err
	}
	return envelope.Order, nil
}

// AcceptAssignment claims a temporary assignment, which accepts the
// underlying order server-side in the same action.
func (c *Client) AcceptAssignment(ctx context.Context, assignmentID, officeID string) (*domain.TemporaryAssignment, error) {
	path := fmt.Sprintf("/staff/temporary-assignments/%s/accept", assignmentID)
	var envelope acceptAssignmentEnvelope
	if err := c.do(ctx, http.MethodPost, path, acceptRequest{OfficeID: officeID}, &envelope); err != nil {
		return nil, err
	}
	return envelope.Assignment, nil
}

// UpdateOrderStatus pushes an explicit status transition. Only success or
// failure is consumed from the response.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, notes string) error {
	path := fmt.Sprintf("/staff/orders/%s/status", orderID)
	return c.do(ctx, http.MethodPost, path, statusRequest{Status: status, Notes: notes}, nil)
}

// ListOffices fetches the offices of the caller's business.
func (c *Client) ListOffices(ctx context.Context) ([]domain.Office, error) {
	var envelope officesEnvelope
	if err := c.do(ctx, http.MethodGet, "/staff/offices", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Offices, nil
}

// GetOffice fetches a single office by id.
func (c *Client) GetOffice(ctx context.Context, officeID string) (*domain.Office, error) {
	path := fmt.Sprintf("/staff/offices/%s", officeID)
	var envelope officeEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Office, nil
}

// ListOfficeStaff fetches the staff members scoped to an office.
func (c *Client) ListOfficeStaff(ctx context.Context, officeID string) ([]domain.Staff, error) {
	path := fmt.Sprintf("/staff/offices/%s/staff", officeID)
	var envelope staffEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Staff, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(payload)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("platform backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.session.Clear(); err != nil {
			c.logger.Warn("failed to clear session after 401", zap.Error(err))
		}
		return ErrUnauthorized
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp.StatusCode, resp.Body)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("unexpected response from platform backend: %w", err)
	}
	return nil
}

// decodeError normalizes the backend's inconsistent error envelopes: some
// endpoints answer {"message": ...}, others {"error": ...}.
func (c *Client) decodeError(statusCode int, body io.Reader) error {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	message := fmt.Sprintf("request failed with status %d", statusCode)
	if err := json.NewDecoder(body).Decode(&envelope); err == nil {
		if envelope.Message != "" {
			message = envelope.Message
		} else if envelope.Error != "" {
			message = envelope.Error
		}
	}
	return &APIError{StatusCode: statusCode, Message: message}
}
