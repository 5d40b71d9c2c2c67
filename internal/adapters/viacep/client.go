package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/httpx"
	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
)

type addressResponse struct {
	CEP        string          `json:"cep"`
	Logradouro string          `json:"logradouro"`
	Bairro     string          `json:"bairro"`
	Localidade string          `json:"localidade"`
	UF         string          `json:"uf"`
	Erro       json.RawMessage `json:"erro"`
}

// notFound reports ViaCEP's "erro" marker, sent as true or "true".
func (r addressResponse) notFound() bool {
	v := strings.Trim(strings.TrimSpace(string(r.Erro)), `"`)
	return v != "" && v != "false"
}

// Client implements ports.PostalLookup against the ViaCEP API.
type Client struct {
	http    *httpx.Client
	baseURL string
}

func New(client *httpx.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://viacep.com.br"
	}
	return &Client{http: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *Client) LookupAddress(ctx context.Context, cep string) (_ domain.PostalAddress, err error) {
	defer obs.Time(ctx, "viacep.LookupAddress")(&err)
	defer obs.TrackUpstream("viacep", ports.ErrNotFound)(&err)

	digits := domain.PostalDigits(cep)
	if digits == "" {
		return domain.PostalAddress{}, fmt.Errorf("lookup cep %q: %w", cep, ports.ErrNotFound)
	}

	endpoint := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	resp, err := c.http.DoWithRetry(ctx, func() (*http.Request, error) {
		return c.http.NewRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		if httpx.IsStatus(err, http.StatusBadRequest) || httpx.IsStatus(err, http.StatusNotFound) {
			return domain.PostalAddress{}, fmt.Errorf("lookup cep %s: %w", digits, ports.ErrNotFound)
		}
		return domain.PostalAddress{}, fmt.Errorf("lookup cep %s: %w", digits, err)
	}
	defer resp.Body.Close()

	var decoded addressResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.PostalAddress{}, fmt.Errorf("decode viacep response: %w", err)
	}
	if decoded.notFound() {
		return domain.PostalAddress{}, fmt.Errorf("lookup cep %s: %w", digits, ports.ErrNotFound)
	}

	return domain.PostalAddress{
		PostalCode:   digits,
		Street:       strings.TrimSpace(decoded.Logradouro),
		Neighborhood: strings.TrimSpace(decoded.Bairro),
		City:         strings.TrimSpace(decoded.Localidade),
		State:        strings.TrimSpace(decoded.UF),
	}, nil
}
