package handlers

import (
	"encoding/json"
	"net/http"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
	VerificationCode string `json:"verificationCode" validate:"omitempty,len=6,numeric"`
}

type AdminResponse struct {
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	Admin       AdminResponse `json:"admin"`
}

// Signup создает единственного админа и высылает код подтверждения на почту
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := h.VerificationService.Signup(r.Context(), req.Email, req.Password); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]string{
		"message": "Админ создан. Код подтверждения отправлен на почту.",
	}, http.StatusCreated)
}

// SendVerification перевыпускает код для существующего админа
func (h *Handlers) SendVerification(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := h.VerificationService.SendVerification(r.Context(), req.Email, req.Password); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]string{
		"message": "Код подтверждения отправлен на почту",
	}, http.StatusOK)
}

// Login выполняет вход по паролю и, при первом входе, по коду подтверждения
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	admin, accessToken, err := h.AuthService.Authenticate(r.Context(), req.Email, req.Password, req.VerificationCode)
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

// CheckAdmin сообщает, создан ли уже админ (нужно форме первичной регистрации)
func (h *Handlers) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	hasAdmin, err := h.VerificationService.HasAdmin(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]bool{"hasAdmin": hasAdmin}, http.StatusOK)
}
