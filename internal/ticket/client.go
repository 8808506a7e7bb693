package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Creator - контракт создания тикета во внешней тикетной системе.
// Хранение тикетов за пределами триггера создания не входит в этот сервис.
type Creator interface {
	CreateTicket(ctx context.Context, reportID uuid.UUID, reason string) (string, error)
}

// HTTPClient - реализация Creator поверх HTTP API тикетной системы
type HTTPClient struct {
	url        string
	httpClient *http.Client
}

// NewHTTPClient создает клиент тикетной системы
func NewHTTPClient(url string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type createTicketRequest struct {
	ReportID string `json:"report_id"`
	Reason   string `json:"reason"`
}

type createTicketResponse struct {
	TicketID string `json:"ticket_id"`
}

// CreateTicket создает тикет и возвращает его идентификатор
func (c *HTTPClient) CreateTicket(ctx context.Context, reportID uuid.UUID, reason string) (string, error) {
	payload, err := json.Marshal(createTicketRequest{
		ReportID: reportID.String(),
		Reason:   reason,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal ticket request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create ticket request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call ticket service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("ticket service returned status %d", resp.StatusCode)
	}

	var out createTicketResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode ticket response: %w", err)
	}
	if out.TicketID == "" {
		return "", fmt.Errorf("ticket service returned empty ticket_id")
	}
	return out.TicketID, nil
}
