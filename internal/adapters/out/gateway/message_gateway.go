// Package gateway implements the messaging gateway port over the external
// delivery service's HTTP API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"freightflow/internal/core/ports"
	"freightflow/internal/pkg/errs"
)

const gatewayName = "message gateway"

// HTTPMessageGateway sends notifications to the external SMS/email service
// as JSON over HTTP. Any non-2xx response is a gateway failure; retry policy
// belongs to the caller.
type HTTPMessageGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPMessageGateway creates a gateway client for the given service URL.
// The http.Client's timeout is the transport-level bound; callers add a
// context deadline per send.
func NewHTTPMessageGateway(baseURL, apiKey string, client *http.Client) *HTTPMessageGateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPMessageGateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

type sendRequest struct {
	RecipientID   string   `json:"recipientId"`
	RecipientName string   `json:"recipientName"`
	Contact       string   `json:"contact"`
	Channels      []string `json:"channels"`
	Message       string   `json:"message"`
	Urgency       string   `json:"urgency"`
}

// Send delivers one message through the external service.
func (g *HTTPMessageGateway) Send(ctx context.Context, message ports.Message) error {
	channels := make([]string, 0, len(message.Channels))
	for _, channel := range message.Channels {
		channels = append(channels, string(channel))
	}

	body, err := json.Marshal(sendRequest{
		RecipientID:   message.RecipientID,
		RecipientName: message.RecipientName,
		Contact:       message.Contact,
		Channels:      channels,
		Message:       message.Body,
		Urgency:       string(message.Urgency),
	})
	if err != nil {
		return errs.NewGatewayErrorWithCause(gatewayName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return errs.NewGatewayErrorWithCause(gatewayName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return errs.NewGatewayErrorWithCause(gatewayName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return errs.NewGatewayErrorWithCause(gatewayName,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	return nil
}
