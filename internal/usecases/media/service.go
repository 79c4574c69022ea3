// Package media valida os arquivos de campanha antes de entregá-los ao
// serviço de armazenamento: tipo e tamanho são verificados aqui, não no
// colaborador externo.
package media

import (
	"context"
	"io"

	"github.com/adboardhq/adboard-api/infrastructure/integrator/storage"
	"github.com/adboardhq/adboard-api/internal/config"
	"github.com/adboardhq/adboard-api/pkg/log"
)

// Kind distingue imagem de vídeo para aplicar o limite de tamanho correto
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// imageTypes e videoTypes são os content types aceitos para cada espécie
var (
	imageTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
	}
	videoTypes = map[string]bool{
		"video/mp4":       true,
		"video/webm":      true,
		"video/quicktime": true,
	}
)

// UploadInput descreve o arquivo enviado por um vendor
type UploadInput struct {
	File        io.Reader
	Filename    string
	ContentType string
	Size        int64
	VendorID    string
	CampaignID  string
}

// UploadResult devolve a URL durável e a espécie detectada
type UploadResult struct {
	URL  string `json:"url"`
	Kind Kind   `json:"kind"`
}

type Uploader interface {
	UploadCampaignMedia(ctx context.Context, input UploadInput) (*UploadResult, error)
}

type Service struct {
	cfg           *config.Config
	storageClient storage.Client
}

func NewService(cfg *config.Config, storageClient storage.Client) Uploader {
	return &Service{
		cfg:           cfg,
		storageClient: storageClient,
	}
}

func (s *Service) UploadCampaignMedia(ctx context.Context, input UploadInput) (*UploadResult, error) {
	kind, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	result, err := s.storageClient.Upload(storage.UploadInput{
		File:        input.File,
		Filename:    input.Filename,
		ContentType: input.ContentType,
		VendorID:    input.VendorID,
		CampaignID:  input.CampaignID,
		MediaKind:   string(kind),
	})
	if err != nil {
		log.L.WithContext(ctx).WithError(err).WithFields(log.Fields{
			"vendorID":    input.VendorID,
			"campaignID":  input.CampaignID,
			"contentType": input.ContentType,
		}).Error("Falha ao enviar mídia para o armazenamento")
		return nil, ErrStorageUnavailable
	}

	return &UploadResult{URL: result.URL, Kind: kind}, nil
}

func (s *Service) validate(input UploadInput) (Kind, error) {
	if input.Size <= 0 {
		return "", ErrEmptyFile
	}

	switch {
	case imageTypes[input.ContentType]:
		if input.Size > s.cfg.Media.MaxImageSizeBytes {
			return "", ErrMediaTooLarge
		}
		return KindImage, nil
	case videoTypes[input.ContentType]:
		if input.Size > s.cfg.Media.MaxVideoSizeBytes {
			return "", ErrMediaTooLarge
		}
		return KindVideo, nil
	default:
		return "", ErrUnsupportedMediaType
	}
}
