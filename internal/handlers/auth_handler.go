package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"dairy-backend/internal/auth"
	"dairy-backend/internal/ledger"
	"dairy-backend/internal/models"
	"dairy-backend/pkg/utils"
)

type AuthHandler struct {
	Ledger     *ledger.Service
	JWTManager *auth.JWTManager
}

func NewAuthHandler(ledgerService *ledger.Service, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{Ledger: ledgerService, JWTManager: jwtManager}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !h.Ledger.Authenticate(req.Username, req.Password) {
		log.Printf("[Auth] Failed login attempt for %q", req.Username)
		utils.Error(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.JWTManager.GenerateToken(req.Username)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.JSON(w, http.StatusOK, models.AuthResponse{Token: token, Username: req.Username})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.NewPassword == "" {
		utils.Error(w, http.StatusBadRequest, "New password is required")
		return
	}

	if !h.Ledger.Authenticate(h.Ledger.Username(), req.CurrentPassword) {
		utils.Error(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	if err := h.Ledger.ChangePassword(r.Context(), req.NewPassword); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}
