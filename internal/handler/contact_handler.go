package handlers

import (
	"encoding/json"
	"net/http"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Contact пересылает сообщение с формы обратной связи на почту владельца.
// Ничего не сохраняется: письмо либо ушло, либо вызывающий видит ошибку.
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := h.ContactService.SendMessage(req.Name, req.Email, req.Message); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"message": "Сообщение отправлено"}, http.StatusOK)
}
