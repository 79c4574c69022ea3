// Package storage é o cliente do serviço externo de armazenamento de
// objetos. A validação de tipo e tamanho da mídia acontece antes, no
// usecase de media; aqui só transportamos o arquivo e devolvemos a URL
// durável.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/adboardhq/adboard-api/internal/config"
)

// UploadInput descreve o arquivo enviado para o armazenamento
type UploadInput struct {
	File        io.Reader
	Filename    string
	ContentType string
	VendorID    string
	CampaignID  string
	MediaKind   string // image | video
}

// UploadResult é a resposta do serviço de armazenamento
type UploadResult struct {
	URL string `json:"url"`
}

type Client interface {
	Upload(input UploadInput) (*UploadResult, error)
}

type StorageClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &StorageClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Storage.TimeoutSecs) * time.Second,
		},
		config: cfg,
	}
}

func (c *StorageClient) Upload(input UploadInput) (*UploadResult, error) {
	body, contentType, err := buildMultipart(input)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/objects", c.config.Storage.URL)
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar requisição para o armazenamento")
	}
	req.Header.Set("Authorization", "Bearer "+c.config.Storage.APIKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "serviço de armazenamento indisponível")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errors.Errorf("armazenamento respondeu com status %d", resp.StatusCode)
	}

	result := &UploadResult{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta do armazenamento")
	}

	return result, nil
}

func buildMultipart(input UploadInput) (io.Reader, string, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		defer pw.Close()
		defer writer.Close()

		_ = writer.WriteField("vendor_id", input.VendorID)
		_ = writer.WriteField("campaign_id", input.CampaignID)
		_ = writer.WriteField("media_kind", input.MediaKind)

		part, err := writer.CreateFormFile("file", input.Filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, input.File); err != nil {
			pw.CloseWithError(err)
			return
		}
	}()

	return pr, writer.FormDataContentType(), nil
}
