// Package gateway é o cliente do gateway de pagamento externo. O gateway é
// opaco para o core: processa cartão/UPI/transferência por conta própria e
// aqui apenas consultamos o resultado de uma transação já iniciada pelo
// vendor.
package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/adboardhq/adboard-api/internal/config"
)

// TransactionStatus é o resultado informado pelo gateway
type TransactionStatus struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"` // success | failed | pending
	Method        string `json:"method"`
}

func (s *TransactionStatus) Succeeded() bool {
	return s.Status == "success"
}

type Client interface {
	VerifyTransaction(transactionID string) (*TransactionStatus, error)
}

type GatewayClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GatewayClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Gateway.TimeoutSecs) * time.Second,
		},
		config: cfg,
	}
}

// VerifyTransaction consulta o gateway pelo resultado de uma transação
func (c *GatewayClient) VerifyTransaction(transactionID string) (*TransactionStatus, error) {
	url := fmt.Sprintf("%s/v1/transactions/%s", c.config.Gateway.URL, transactionID)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar requisição para o gateway")
	}
	req.Header.Set("Authorization", "Bearer "+c.config.Gateway.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "gateway de pagamento indisponível")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.Errorf("transação %s desconhecida pelo gateway", transactionID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("gateway respondeu com status %d", resp.StatusCode)
	}

	status := &TransactionStatus{}
	if err := json.NewDecoder(resp.Body).Decode(status); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta do gateway")
	}

	return status, nil
}
