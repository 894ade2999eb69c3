package handlers

import (
	"encoding/json"
	"net/http"
)

type UpdateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

func (h *Handlers) GetAccount(w http.ResponseWriter, r *http.Request) {
	adminID, ok := r.Context().Value("adminID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	admin, err := h.AuthService.GetProfile(r.Context(), adminID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, admin, http.StatusOK)
}

// UpdateAccountEmail меняет email и возвращает новый токен с обновленным
// claim, чтобы клиент не перелогинивался
func (h *Handlers) UpdateAccountEmail(w http.ResponseWriter, r *http.Request) {
	adminID, ok := r.Context().Value("adminID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req UpdateEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	admin, accessToken, err := h.AuthService.UpdateAdminEmail(r.Context(), adminID, req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := LoginResponse{
		AccessToken: accessToken,
		Admin: AdminResponse{
			AdminID: admin.AdminID,
			Email:   admin.Email,
			Role:    "admin",
		},
	}

	WriteJSON(w, response, http.StatusOK)
}

// UpdateAccountPassword требует подтверждения текущим паролем
func (h *Handlers) UpdateAccountPassword(w http.ResponseWriter, r *http.Request) {
	adminID, ok := r.Context().Value("adminID").(string)
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	err := h.AuthService.UpdateAdminPassword(r.Context(), adminID, req.OldPassword, req.NewPassword)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"message": "Пароль обновлен"}, http.StatusOK)
}
