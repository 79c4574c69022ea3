package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/adboardhq/adboard-api/internal/usecases/notifying"
	"github.com/adboardhq/adboard-api/pkg/apiErrors"
	"github.com/adboardhq/adboard-api/pkg/middleware"
)

// ListMyNotifications devolve as notificações do vendor autenticado. Com
// ?unread=true devolve apenas as não lidas.
func ListMyNotifications(dispatcher notifying.Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		onlyUnread := r.URL.Query().Get("unread") == "true"

		notifications, err := dispatcher.ListByVendor(r.Context(), claims.UserID, onlyUnread)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, notifications)
	})
}

// MarkNotificationRead marca uma notificação do próprio vendor como lida
func MarkNotificationRead(dispatcher notifying.Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := dispatcher.MarkRead(r.Context(), id, claims.UserID); err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "read"})
	})
}

// MarkAllNotificationsRead marca todas as notificações do vendor como lidas
func MarkAllNotificationsRead(dispatcher notifying.Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := dispatcher.MarkAllRead(r.Context(), claims.UserID); err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "read"})
	})
}

// PostNotificationByID registra a rota coringa de POST em
// /v1/me/notifications/:id. O httprouter não aceita o literal "read-all" e o
// parâmetro ":id" na mesma posição da árvore, então o literal é resolvido aqui.
func PostNotificationByID(dispatcher notifying.Dispatcher) http.Handler {
	readAll := MarkAllNotificationsRead(dispatcher)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httprouter.ParamsFromContext(r.Context()).ByName("id") == "read-all" {
			readAll.ServeHTTP(w, r)
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
	})
}
