package handler

import (
	"net/http"
	"time"

	"github.com/adboardhq/adboard-api/infrastructure/realtime"
	"github.com/adboardhq/adboard-api/internal/domain"
)

// TariffCache expõe o estado do cache de tarifas sincronizado em tempo real.
type TariffCache interface {
	State() realtime.ConnectionState
	Tariffs() ([]domain.AdTypeTariff, time.Time)
}

type healthcheckResponse struct {
	Status   string         `json:"status"`
	Time     time.Time      `json:"time"`
	Realtime realtimeHealth `json:"realtime"`
}

type realtimeHealth struct {
	State         realtime.ConnectionState `json:"state"`
	Degraded      bool                     `json:"degraded"`
	CachedTariffs int                      `json:"cached_tariffs"`
	LastSyncAt    *time.Time               `json:"last_sync_at,omitempty"`
}

// HealthcheckHandler responde o liveness junto com o estado da sincronização
// de preços: um canal caído não derruba o serviço, mas precisa aparecer aqui
// para o operador saber que as tarifas servidas vêm do cache.
func HealthcheckHandler(cache TariffCache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := cache.State()
		tariffs, syncedAt := cache.Tariffs()

		health := realtimeHealth{
			State:         state,
			Degraded:      state != realtime.StateConnected,
			CachedTariffs: len(tariffs),
		}
		if !syncedAt.IsZero() {
			health.LastSyncAt = &syncedAt
		}

		respondJSON(w, http.StatusOK, healthcheckResponse{
			Status:   "ok",
			Time:     time.Now().UTC(),
			Realtime: health,
		})
	})
}
