package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"

	"github.com/adboardhq/adboard-api/internal/domain"
	"github.com/adboardhq/adboard-api/internal/usecases/campaigning"
	"github.com/adboardhq/adboard-api/pkg/apiErrors"
	"github.com/adboardhq/adboard-api/pkg/log"
	"github.com/adboardhq/adboard-api/pkg/middleware"
	"github.com/adboardhq/adboard-api/pkg/utils"
)

type adRequestBody struct {
	ID             string          `json:"id,omitempty"`
	AdTypeID       string          `json:"ad_type_id"`
	Title          string          `json:"title"`
	Content        string          `json:"content"`
	ImageURL       *string         `json:"image_url,omitempty"`
	VideoURL       *string         `json:"video_url,omitempty"`
	TargetAudience *string         `json:"target_audience,omitempty"`
	StartDate      string          `json:"requested_start_date"`
	EndDate        string          `json:"requested_end_date"`
	DailyBudget    decimal.Decimal `json:"daily_budget"`
	PriorityLevel  string          `json:"priority_level,omitempty"`
}

type decisionBody struct {
	Notes  *string `json:"admin_notes,omitempty"`
	Reason string  `json:"rejection_reason,omitempty"`
}

type adRequestResponse struct {
	Request   *domain.AdRequest       `json:"request"`
	Breakdown domain.PricingBreakdown `json:"pricing_breakdown"`
}

func parseSubmission(r *http.Request, vendorID string) (campaigning.SubmissionInput, bool) {
	var body adRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return campaigning.SubmissionInput{}, false
	}

	startDate, err := utils.ParseDate(body.StartDate)
	if err != nil {
		return campaigning.SubmissionInput{}, false
	}
	endDate, err := utils.ParseDate(body.EndDate)
	if err != nil {
		return campaigning.SubmissionInput{}, false
	}

	return campaigning.SubmissionInput{
		ID:             body.ID,
		VendorID:       vendorID,
		AdTypeID:       body.AdTypeID,
		Title:          body.Title,
		Content:        body.Content,
		ImageURL:       body.ImageURL,
		VideoURL:       body.VideoURL,
		TargetAudience: body.TargetAudience,
		StartDate:      *startDate,
		EndDate:        *endDate,
		DailyBudget:    body.DailyBudget,
		PriorityLevel:  domain.PriorityLevel(body.PriorityLevel),
	}, true
}

// SubmitAdRequest cria uma campanha já submetida para revisão
func SubmitAdRequest(engine campaigning.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		input, ok := parseSubmission(r, claims.UserID)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		request, err := engine.SubmitRequest(r.Context(), input)
		if err != nil {
			respondError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"ad_request_id": request.ID,
			"vendor_id":     request.VendorID,
		}).Info("Campanha submetida para revisão")

		respondJSON(w, http.StatusCreated, adRequestResponse{
			Request:   request,
			Breakdown: engine.CalculatePricing(request.DailyBudget, request.DurationDays()),
		})
	})
}

// SaveAdRequestDraft cria ou regrava um rascunho de campanha
func SaveAdRequestDraft(engine campaigning.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		input, ok := parseSubmission(r, claims.UserID)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		request, err := engine.SaveDraft(r.Context(), input)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusCreated, adRequestResponse{
			Request:   request,
			Breakdown: engine.CalculatePricing(request.DailyBudget, request.DurationDays()),
		})
	})
}

// SubmitAdRequestDraft promove um rascunho para a fila de revisão
func SubmitAdRequestDraft(engine campaigning.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		request, err := engine.SubmitDraft(r.Context(), id, claims.UserID)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, request)
	})
}

// GetAdRequest devolve uma campanha. Vendors só enxergam as próprias; admins,
// qualquer uma.
func GetAdRequest(engine campaigning.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		request, err := engine.GetRequest(r.Context(), id)
		if err != nil {
			respondError(w, r, err)
			return
		}

		if !claims.IsAdmin() && request.VendorID != claims.UserID {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Campanha não encontrada", nil)
			return
		}

		respondJSON(w, http.StatusOK, request)
	})
}

// ListMyAdRequests lista as campanhas do vendor autenticado
func ListMyAdRequests(engine campaigning.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		requests, err := engine.ListByVendor(r.Context(), claims.UserID)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, requests)
	})
}

// ListAdRequests é a fila de revisão do admin; aceita filtros de status
// repetidos na query string (?status=pending&status=approved)
func ListAdRequests(engine campaigning.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		statuses := make([]domain.AdRequestStatus, 0)
		for _, raw := range r.URL.Query()["status"] {
			statuses = append(statuses, domain.AdRequestStatus(raw))
		}

		requests, err := engine.ListForReview(r.Context(), statuses)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, requests)
	})
}

func ApproveAdRequest(engine campaigning.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var body decisionBody
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}

		if err := engine.Approve(r.Context(), id, claims.UserID, body.Notes); err != nil {
			respondError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"ad_request_id": id,
			"reviewer_id":   claims.UserID,
		}).Info("Campanha aprovada")

		respondJSON(w, http.StatusOK, map[string]string{"status": string(domain.AdRequestStatusApproved)})
	})
}

func RejectAdRequest(engine campaigning.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var body decisionBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if err := engine.Reject(r.Context(), id, claims.UserID, body.Reason, body.Notes); err != nil {
			respondError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"ad_request_id": id,
			"reviewer_id":   claims.UserID,
		}).Info("Campanha rejeitada")

		respondJSON(w, http.StatusOK, map[string]string{"status": string(domain.AdRequestStatusRejected)})
	})
}

func CancelAdRequest(engine campaigning.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := engine.Cancel(r.Context(), id, claims.UserID, claims.IsAdmin()); err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": string(domain.AdRequestStatusCancelled)})
	})
}

// GetMyStats devolve os agregados do painel do vendor
func GetMyStats(engine campaigning.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		stats, err := engine.VendorStats(r.Context(), claims.UserID)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	})
}

// PostAdRequestByID registra a rota coringa de POST em /v1/ad-requests/:id.
// O httprouter não aceita o literal "draft" e o parâmetro ":id" na mesma
// posição da árvore, então o literal é resolvido aqui.
func PostAdRequestByID(engine campaigning.Engine) http.Handler {
	draft := SaveAdRequestDraft(engine)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httprouter.ParamsFromContext(r.Context()).ByName("id") == "draft" {
			draft.ServeHTTP(w, r)
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
	})
}
