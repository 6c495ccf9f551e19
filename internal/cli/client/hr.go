package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Atestado is a submitted medical-leave attestation.
type Atestado struct {
	ID           int    `json:"id"`
	NomeCompleto string `json:"nome_completo"`
	CaminhoFoto  string `json:"caminho_foto"`
	DataEnvio    string `json:"data_envio"`
	Status       string `json:"status"` // Pendente, Visto, Aprovado, Recusado
}

// SubmitAtestado uploads an attestation photo for the named employee.
func (c *Client) SubmitAtestado(ctx context.Context, nomeCompleto, fotoPath string) error {
	body, contentType, err := multipartFile("atestado_foto", fotoPath, map[string]string{
		"nome_completo": nomeCompleto,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/atestados", body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("failed to submit atestado: %w", err)
	}
	return nil
}

// ListAtestados returns all attestations for HR review.
func (c *Client) ListAtestados(ctx context.Context) ([]Atestado, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/atestados", "", nil)
	if err != nil {
		return nil, err
	}
	var atestados []Atestado
	if err := c.doJSON(req, &atestados); err != nil {
		return nil, fmt.Errorf("failed to list atestados: %w", err)
	}
	return atestados, nil
}

// SetAtestadoStatus updates the review status of an attestation.
func (c *Client) SetAtestadoStatus(ctx context.Context, id int, status string) error {
	body, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/api/atestados/%d/status", id), "", bytes.NewReader(body))
	if err != nil {
		return err
	}
	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("failed to update atestado status: %w", err)
	}
	return nil
}

// DeleteAtestado removes an attestation.
func (c *Client) DeleteAtestado(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/atestados/%d", id), "", nil)
	if err != nil {
		return err
	}
	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("failed to delete atestado: %w", err)
	}
	return nil
}

// Ferias is an approved vacation period.
type Ferias struct {
	ID                      int    `json:"id"`
	PeriodoAquisitivoInicio string `json:"periodo_aquisitivo_inicio"`
	PeriodoAquisitivoFim    string `json:"periodo_aquisitivo_fim"`
	PeriodoGozoInicio       string `json:"periodo_gozo_inicio"`
	PeriodoGozoFim          string `json:"periodo_gozo_fim"`
}

// MyFerias returns the signed-in user's vacation periods.
func (c *Client) MyFerias(ctx context.Context, token string) ([]Ferias, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/ferias/me", token, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		OK    bool     `json:"ok"`
		Items []Ferias `json:"items"`
		Error string   `json:"error"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch ferias: %w", err)
	}
	if !resp.OK {
		msg := resp.Error
		if msg == "" {
			msg = "backend refused the request"
		}
		return nil, fmt.Errorf("failed to fetch ferias: %s", msg)
	}
	return resp.Items, nil
}

// Holerite is a payslip available for download.
type Holerite struct {
	ID            int    `json:"id"`
	MesReferencia string `json:"mes_referencia"`
	URLDownload   string `json:"url_download"`
}

// MyHolerites returns the signed-in user's payslips.
func (c *Client) MyHolerites(ctx context.Context, token string) ([]Holerite, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/meus-olerites", token, nil)
	if err != nil {
		return nil, err
	}
	var holerites []Holerite
	if err := c.doJSON(req, &holerites); err != nil {
		return nil, fmt.Errorf("failed to fetch holerites: %w", err)
	}
	return holerites, nil
}

// UploadProfilePhoto replaces the user's profile photo and returns the new
// photo path to merge into the local session.
func (c *Client) UploadProfilePhoto(ctx context.Context, token, fotoPath string) (string, error) {
	body, contentType, err := multipartFile("foto_perfil", fotoPath, nil)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/user/photo", body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	var resp struct {
		FotoPerfilURL string `json:"foto_perfil_url"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return "", fmt.Errorf("failed to upload profile photo: %w", err)
	}
	return resp.FotoPerfilURL, nil
}
