package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/adboardhq/adboard-api/internal/domain"
	"github.com/adboardhq/adboard-api/internal/usecases/pricing"
	"github.com/adboardhq/adboard-api/pkg/apiErrors"
	"github.com/adboardhq/adboard-api/pkg/log"
	"github.com/adboardhq/adboard-api/pkg/middleware"
)

type updatePricingRequest struct {
	NewPrice float64 `json:"new_price"`
	Reason   string  `json:"reason"`
}

type pricingResponse struct {
	Tariffs  []domain.AdTypeTariff `json:"tariffs"`
	Fallback bool                  `json:"fallback"`
}

// GetPricing devolve as tarifas vigentes. O campo fallback sinaliza que a
// resposta veio dos preços padrão (tabela ainda não provisionada).
func GetPricing(service pricing.PricingStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tariffs, err := service.GetCurrentPricing(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}

		fallback := len(tariffs) > 0 && tariffs[0].UpdatedByName == domain.SystemActorName

		respondJSON(w, http.StatusOK, pricingResponse{Tariffs: tariffs, Fallback: fallback})
	})
}

func UpdatePricing(service pricing.PricingStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		adTypeID := httprouter.ParamsFromContext(r.Context()).ByName("ad_type_id")

		var body updatePricingRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		entry, err := service.UpdatePricing(r.Context(), pricing.UpdatePricingInput{
			AdTypeID:  adTypeID,
			NewPrice:  body.NewPrice,
			Reason:    body.Reason,
			ActorID:   claims.UserID,
			ActorName: claims.UserName,
		})
		if err != nil {
			respondError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"ad_type_id": adTypeID,
			"old_price":  entry.OldPrice.String(),
			"new_price":  entry.NewPrice.String(),
		}).Info("Tarifa atualizada")

		respondJSON(w, http.StatusOK, entry)
	})
}

func GetPricingHistory(service pricing.PricingStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adTypeID := r.URL.Query().Get("ad_type_id")

		limit := uint64(50)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		entries, err := service.GetPricingHistory(r.Context(), adTypeID, limit)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	})
}
