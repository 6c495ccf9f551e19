package client

import (
	"context"
	"fmt"
	"net/http"
)

// Formulario is a submitted client intake form. The backend stores many
// more columns; the CLI surfaces the identifying ones and keeps the
// free-form sections as raw strings.
type Formulario struct {
	ID                     int    `json:"id"`
	CNPJ                   string `json:"cnpj"`
	Telefone               string `json:"telefone"`
	Endereco               string `json:"endereco"`
	HorarioFuncionamento   string `json:"horario_funcionamento"`
	MetrosQuadrados        string `json:"metros_quadrados"`
	QuantFuncionarios      int    `json:"quant_funcionarios"`
	ProcessoOperacional    string `json:"processo_operacional"`
	ResponsavelLegalNome   string `json:"responsavel_legal_nome"`
	ResponsavelLegalCargo  string `json:"responsavel_legal_cargo"`
	ResponsavelTecnicoNome string `json:"responsavel_tecnico_nome"`
	Residuos               string `json:"residuos"`
	EmpresasColeta         string `json:"empresas_coleta"`
	DestinacaoFinal        string `json:"destinacaoFinal"`
	CreatedAt              string `json:"created_at"`
}

// Pagination is the paging envelope for form listings.
type Pagination struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}

// ListFormularios returns one page of form submissions.
func (c *Client) ListFormularios(ctx context.Context, page int) ([]Formulario, Pagination, error) {
	path := "/api/formularios"
	if page > 0 {
		path = fmt.Sprintf("%s?page=%d", path, page)
	}
	req, err := c.newRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, Pagination{}, err
	}
	var resp struct {
		Data       []Formulario `json:"data"`
		Pagination Pagination   `json:"pagination"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list formularios: %w", err)
	}
	return resp.Data, resp.Pagination, nil
}

// DeleteFormulario removes a form submission. Note the singular path
// segment; the backend routes list and delete differently.
func (c *Client) DeleteFormulario(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/formulario/%d", id), "", nil)
	if err != nil {
		return err
	}
	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("failed to delete formulario: %w", err)
	}
	return nil
}
