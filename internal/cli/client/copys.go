package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Copy is a marketing copy card. Responsavel and Estado keep the backend's
// uppercase JSON names.
type Copy struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Hook        string `json:"hook"`
	Development string `json:"development"`
	CTA         string `json:"cta"`
	Hashtags    string `json:"hashtags"`
	Responsavel string `json:"RESPONSAVEL"`
	Estado      string `json:"ESTADO"` // A Fazer, Em Andamento, Pronto
}

// Allowed values for the Estado and Responsavel fields.
var (
	CopyStatuses     = []string{"A Fazer", "Em Andamento", "Pronto"}
	CopyResponsaveis = []string{"Shinji", "Leticia", "Ninguém"}
)

// ListCopys returns all marketing copy cards.
func (c *Client) ListCopys(ctx context.Context) ([]Copy, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/copys", "", nil)
	if err != nil {
		return nil, err
	}
	var copys []Copy
	if err := c.doJSON(req, &copys); err != nil {
		return nil, fmt.Errorf("failed to list copys: %w", err)
	}
	return copys, nil
}

// UpdateCopyField updates a single field of a copy card, matching the
// backend's per-field PUT contract.
func (c *Client) UpdateCopyField(ctx context.Context, id int, field, value string) error {
	body, err := json.Marshal(map[string]string{field: value})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/api/copys/%d", id), "", bytes.NewReader(body))
	if err != nil {
		return err
	}
	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("failed to update copy: %w", err)
	}
	return nil
}

// DeleteCopy removes a copy card. The action cannot be undone.
func (c *Client) DeleteCopy(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/copys/%d", id), "", nil)
	if err != nil {
		return err
	}
	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("failed to delete copy: %w", err)
	}
	return nil
}
