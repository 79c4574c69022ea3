// Package handler expõe a superfície HTTP da aplicação
package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/adboardhq/adboard-api/internal/usecases/campaigning"
	"github.com/adboardhq/adboard-api/internal/usecases/media"
	"github.com/adboardhq/adboard-api/internal/usecases/notifying"
	"github.com/adboardhq/adboard-api/internal/usecases/paying"
	"github.com/adboardhq/adboard-api/internal/usecases/placing"
	"github.com/adboardhq/adboard-api/internal/usecases/pricing"
	"github.com/adboardhq/adboard-api/pkg/apiErrors"
	"github.com/adboardhq/adboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Falha ao serializar resposta")
	}
}

// errorCode traduz os erros dos usecases para os códigos expostos pela API.
// Erros fora da taxonomia viram SRV_001.
func errorCode(err error) string {
	switch {
	// Validação
	case errors.Is(err, campaigning.ErrMissingRequiredField),
		errors.Is(err, notifying.ErrVendorIDRequired),
		errors.Is(err, notifying.ErrTitleRequired),
		errors.Is(err, paying.ErrTransactionIDRequired):
		return apiErrors.ErrMissingRequiredData
	case errors.Is(err, campaigning.ErrInvalidDateRange):
		return apiErrors.ErrInvalidDateRange
	case errors.Is(err, campaigning.ErrVideoRequired),
		errors.Is(err, campaigning.ErrBudgetNotPositive),
		errors.Is(err, campaigning.ErrUnknownAdType),
		errors.Is(err, campaigning.ErrReasonRequired),
		errors.Is(err, pricing.ErrReasonRequired),
		errors.Is(err, pricing.ErrUnknownAdType),
		errors.Is(err, placing.ErrUnknownSurface),
		errors.Is(err, placing.ErrUnknownInteractionKind),
		errors.Is(err, notifying.ErrUnknownType):
		return apiErrors.ErrInvalidRequest
	case errors.Is(err, pricing.ErrNegativePrice),
		errors.Is(err, pricing.ErrPriceNotANumber),
		errors.Is(err, pricing.ErrPriceAboveLimit):
		return apiErrors.ErrInvalidPrice
	case errors.Is(err, media.ErrUnsupportedMediaType),
		errors.Is(err, media.ErrMediaTooLarge),
		errors.Is(err, media.ErrEmptyFile):
		return apiErrors.ErrMediaRejected

	// Estado e conflito
	case errors.Is(err, campaigning.ErrInvalidState),
		errors.Is(err, paying.ErrRequestNotApproved),
		errors.Is(err, placing.ErrNotServable):
		return apiErrors.ErrInvalidState
	case errors.Is(err, paying.ErrDuplicateTransaction):
		return apiErrors.ErrConflict

	// Pagamento
	case errors.Is(err, paying.ErrPaymentDeclined):
		return apiErrors.ErrPaymentDeclined
	case errors.Is(err, paying.ErrAmountMismatch):
		return apiErrors.ErrAmountMismatch

	// Recurso
	case errors.Is(err, campaigning.ErrRequestNotFound),
		errors.Is(err, campaigning.ErrNotOwner),
		errors.Is(err, paying.ErrRequestNotFound),
		errors.Is(err, pricing.ErrTariffNotFound),
		errors.Is(err, placing.ErrPlacementNotFound),
		errors.Is(err, notifying.ErrNotificationNotFound):
		return apiErrors.ErrNotFound

	// Colaboradores externos
	case errors.Is(err, paying.ErrGatewayUnavailable),
		errors.Is(err, media.ErrStorageUnavailable):
		return apiErrors.ErrCommunication

	default:
		return apiErrors.ErrInternalServer
	}
}

// respondError registra e escreve o erro no formato padrão da API
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorCode(err)
	if code == apiErrors.ErrInternalServer {
		log.ForContext(r.Context()).WithError(err).Error("Erro inesperado no handler")
		apiErrors.WriteError(w, code, "Erro interno do servidor", nil)
		return
	}
	apiErrors.WriteError(w, code, err.Error(), nil)
}
