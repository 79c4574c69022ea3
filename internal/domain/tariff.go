// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdType identifica o formato de anúncio precificado por uma tarifa
type AdType string

const (
	AdTypeBanner       AdType = "banner"
	AdTypeVideo        AdType = "video"
	AdTypePopup        AdType = "popup"
	AdTypeNotification AdType = "notification"
)

// AdTypes lista todos os formatos suportados, na ordem de exibição
var AdTypes = []AdType{
	AdTypeBanner,
	AdTypeNotification,
	AdTypePopup,
	AdTypeVideo,
}

func (t AdType) Valid() bool {
	switch t {
	case AdTypeBanner, AdTypeVideo, AdTypePopup, AdTypeNotification:
		return true
	}
	return false
}

// SystemActorName é o sentinela usado em UpdatedByName quando a tabela de
// tarifas ainda não foi provisionada e o serviço responde com os preços
// padrão. Permite que o chamador detecte o modo fallback.
const SystemActorName = "System"

// AdTypeTariff representa o preço vigente de um formato de anúncio.
// Existe exatamente uma tarifa ativa por ad_type_id.
type AdTypeTariff struct {
	AdTypeID      string          `json:"ad_type_id"`
	TypeName      AdType          `json:"type_name"`
	BasePrice     decimal.Decimal `json:"base_price"`
	Currency      string          `json:"currency"`
	EffectiveFrom time.Time       `json:"effective_from"`
	LastUpdated   time.Time       `json:"last_updated"`
	UpdatedBy     string          `json:"updated_by"`
	UpdatedByName string          `json:"updated_by_name"`
}

// PricingHistoryEntry é o registro imutável de uma alteração de preço
type PricingHistoryEntry struct {
	ID        string          `json:"id"`
	AdTypeID  string          `json:"ad_type_id"`
	TypeName  AdType          `json:"type_name"`
	OldPrice  decimal.Decimal `json:"old_price"`
	NewPrice  decimal.Decimal `json:"new_price"`
	Reason    string          `json:"reason"`
	ChangedBy string          `json:"changed_by"`
	CreatedAt time.Time       `json:"created_at"`
}

// DefaultTariffs retorna a lista mínima de preços padrão usada quando a
// tabela de tarifas está vazia (bootstrap pragmático, não perda de dados)
func DefaultTariffs() []AdTypeTariff {
	now := time.Now()
	defaults := map[AdType]int64{
		AdTypeBanner:       500,
		AdTypeNotification: 300,
		AdTypePopup:        400,
		AdTypeVideo:        1200,
	}

	tariffs := make([]AdTypeTariff, 0, len(AdTypes))
	for _, adType := range AdTypes {
		tariffs = append(tariffs, AdTypeTariff{
			AdTypeID:      string(adType),
			TypeName:      adType,
			BasePrice:     decimal.NewFromInt(defaults[adType]),
			Currency:      "INR",
			EffectiveFrom: now,
			LastUpdated:   now,
			UpdatedByName: SystemActorName,
		})
	}

	return tariffs
}
