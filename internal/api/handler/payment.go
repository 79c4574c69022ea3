package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/adboardhq/adboard-api/internal/usecases/paying"
	"github.com/adboardhq/adboard-api/pkg/apiErrors"
	"github.com/adboardhq/adboard-api/pkg/log"
	"github.com/adboardhq/adboard-api/pkg/middleware"
)

type paymentBody struct {
	AdRequestID          string          `json:"ad_request_id"`
	Amount               decimal.Decimal `json:"amount"`
	PaymentMethod        string          `json:"payment_method"`
	GatewayTransactionID string          `json:"gateway_transaction_id"`
}

type paymentResponse struct {
	PaymentID        string `json:"payment_id"`
	ReceiptRef       string `json:"receipt_ref"`
	Status           string `json:"status"`
	AlreadyProcessed bool   `json:"already_processed,omitempty"`
}

// ProcessPayment liquida uma campanha aprovada. Um reenvio com o mesmo
// gateway_transaction_id responde 200 com already_processed, nunca duplica o
// pagamento.
func ProcessPayment(coordinator paying.Coordinator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var body paymentBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		result, err := coordinator.ProcessPayment(r.Context(), paying.ProcessPaymentInput{
			AdRequestID:          body.AdRequestID,
			VendorID:             claims.UserID,
			Amount:               body.Amount,
			Method:               body.PaymentMethod,
			GatewayTransactionID: body.GatewayTransactionID,
		})
		if err != nil {
			respondError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"ad_request_id":     body.AdRequestID,
			"payment_id":        result.Payment.ID,
			"already_processed": result.AlreadyProcessed,
		}).Info("Pagamento processado")

		status := http.StatusCreated
		if result.AlreadyProcessed {
			status = http.StatusOK
		}

		respondJSON(w, status, paymentResponse{
			PaymentID:        result.Payment.ID,
			ReceiptRef:       result.Payment.ReceiptRef,
			Status:           string(result.Payment.Status),
			AlreadyProcessed: result.AlreadyProcessed,
		})
	})
}

// ListMyPayments devolve a trilha de pagamentos do vendor autenticado
func ListMyPayments(coordinator paying.Coordinator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		payments, err := coordinator.ListByVendor(r.Context(), claims.UserID)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, payments)
	})
}
