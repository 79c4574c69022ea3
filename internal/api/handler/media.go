package handler

import (
	"net/http"

	"github.com/adboardhq/adboard-api/internal/usecases/media"
	"github.com/adboardhq/adboard-api/pkg/apiErrors"
	"github.com/adboardhq/adboard-api/pkg/middleware"
)

// 32 MB em memória antes de cair para arquivos temporários
const multipartMemoryLimit = 32 << 20

// UploadMedia recebe o criativo (imagem ou vídeo) via multipart e o repassa
// para o serviço de armazenamento. O campo de arquivo se chama "file";
// campaign_id é opcional enquanto a campanha ainda é rascunho.
func UploadMedia(uploader media.Uploader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formulário multipart inválido", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo de arquivo ausente", nil)
			return
		}
		defer file.Close()

		result, err := uploader.UploadCampaignMedia(r.Context(), media.UploadInput{
			File:        file,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			VendorID:    claims.UserID,
			CampaignID:  r.FormValue("campaign_id"),
		})
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusCreated, result)
	})
}
