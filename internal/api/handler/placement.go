package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/adboardhq/adboard-api/internal/domain"
	"github.com/adboardhq/adboard-api/internal/usecases/placing"
	"github.com/adboardhq/adboard-api/pkg/apiErrors"
)

type interactionBody struct {
	Kind string `json:"kind"`
}

// GetPlacements lista os placements elegíveis para uma superfície. Endpoint
// público, consumido pelas superfícies de exibição sem autenticação.
func GetPlacements(scheduler placing.Scheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		placementType := domain.PlacementType(params.ByName("type"))

		var limit uint64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		rotation, err := scheduler.GetEligiblePlacements(r.Context(), placementType, limit)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, rotation)
	})
}

// RecordInteraction registra uma impressão ou clique em um placement ativo.
// Endpoint público, mas só placements serviveis aceitam o registro.
func RecordInteraction(scheduler placing.Scheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		placementID := params.ByName("id")

		var body interactionBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		placement, err := scheduler.RecordInteraction(r.Context(), placementID, domain.InteractionKind(body.Kind))
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, placement)
	})
}
