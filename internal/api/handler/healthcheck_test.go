package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/adboardhq/adboard-api/infrastructure/realtime"
	"github.com/adboardhq/adboard-api/internal/domain"
)

type stubTariffCache struct {
	state    realtime.ConnectionState
	tariffs  []domain.AdTypeTariff
	syncedAt time.Time
}

func (s *stubTariffCache) State() realtime.ConnectionState { return s.state }

func (s *stubTariffCache) Tariffs() ([]domain.AdTypeTariff, time.Time) {
	return s.tariffs, s.syncedAt
}

func TestHealthcheckHandler(t *testing.T) {
	syncedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		cache    *stubTariffCache
		validate func(t *testing.T, resp healthcheckResponse)
	}{
		{
			name: "Canal conectado reporta cache quente",
			cache: &stubTariffCache{
				state: realtime.StateConnected,
				tariffs: []domain.AdTypeTariff{
					{TypeName: domain.AdTypeBanner, BasePrice: decimal.NewFromInt(500)},
					{TypeName: domain.AdTypeVideo, BasePrice: decimal.NewFromInt(1200)},
				},
				syncedAt: syncedAt,
			},
			validate: func(t *testing.T, resp healthcheckResponse) {
				assert.Equal(t, "ok", resp.Status)
				assert.Equal(t, realtime.StateConnected, resp.Realtime.State)
				assert.False(t, resp.Realtime.Degraded)
				assert.Equal(t, 2, resp.Realtime.CachedTariffs)
				assert.NotNil(t, resp.Realtime.LastSyncAt)
				assert.True(t, resp.Realtime.LastSyncAt.Equal(syncedAt))
			},
		},
		{
			name: "Canal caído marca modo degradado mas o cache continua servindo",
			cache: &stubTariffCache{
				state: realtime.StateDisconnected,
				tariffs: []domain.AdTypeTariff{
					{TypeName: domain.AdTypeBanner, BasePrice: decimal.NewFromInt(500)},
				},
				syncedAt: syncedAt,
			},
			validate: func(t *testing.T, resp healthcheckResponse) {
				assert.Equal(t, "ok", resp.Status)
				assert.Equal(t, realtime.StateDisconnected, resp.Realtime.State)
				assert.True(t, resp.Realtime.Degraded)
				assert.Equal(t, 1, resp.Realtime.CachedTariffs)
			},
		},
		{
			name:  "Sem sincronização inicial omite o carimbo",
			cache: &stubTariffCache{state: realtime.StateReconnecting},
			validate: func(t *testing.T, resp healthcheckResponse) {
				assert.True(t, resp.Realtime.Degraded)
				assert.Equal(t, 0, resp.Realtime.CachedTariffs)
				assert.Nil(t, resp.Realtime.LastSyncAt)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)

			HealthcheckHandler(tt.cache).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)

			var resp healthcheckResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			tt.validate(t, resp)
		})
	}
}
