package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Comunicado is a company announcement.
type Comunicado struct {
	ID        int    `json:"id"`
	Titulo    string `json:"titulo"`
	Corpo     string `json:"corpo"`
	CreatedAt string `json:"created_at"`
}

// ListComunicados returns all announcements, newest first.
func (c *Client) ListComunicados(ctx context.Context) ([]Comunicado, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/comunicados", "", nil)
	if err != nil {
		return nil, err
	}
	var comunicados []Comunicado
	if err := c.doJSON(req, &comunicados); err != nil {
		return nil, fmt.Errorf("failed to list comunicados: %w", err)
	}
	return comunicados, nil
}

// CreateComunicado publishes an announcement and returns the created record.
func (c *Client) CreateComunicado(ctx context.Context, titulo, corpo string) (*Comunicado, error) {
	body, err := json.Marshal(map[string]string{"titulo": titulo, "corpo": corpo})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/comunicados", "", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	var created Comunicado
	if err := c.doJSON(req, &created); err != nil {
		return nil, fmt.Errorf("failed to create comunicado: %w", err)
	}
	return &created, nil
}

// RegisterPushToken associates a device push token with a user so the
// backend can reach the device on broadcast.
func (c *Client) RegisterPushToken(ctx context.Context, userID int, pushToken, platform string) error {
	body, err := json.Marshal(map[string]any{
		"userId":        userID,
		"expoPushToken": pushToken,
		"platform":      platform,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/register", "", bytes.NewReader(body))
	if err != nil {
		return err
	}
	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("failed to register push token: %w", err)
	}
	return nil
}

// Broadcast sends a push notification to every registered device and
// returns how many devices it reached.
func (c *Client) Broadcast(ctx context.Context, title, body string) (int, error) {
	reqBody, err := json.Marshal(map[string]string{"title": title, "body": body})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/broadcast", "", bytes.NewReader(reqBody))
	if err != nil {
		return 0, err
	}
	var resp struct {
		Sent int `json:"sent"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return 0, fmt.Errorf("failed to broadcast: %w", err)
	}
	return resp.Sent, nil
}
