package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dapuribu-be/internal/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func setAccessTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.WriteJSONError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrEmailExists) {
			code = http.StatusConflict
		}
		utils.WriteJSONError(w, err.Error(), code)
		return
	}

	setAccessTokenCookie(w, token)
	utils.WriteJSON(w, http.StatusCreated, authResponse{
		Token: token,
		User:  userResponse{ID: u.ID, Email: u.Email, Role: string(u.Role)},
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	setAccessTokenCookie(w, token)
	utils.WriteJSON(w, http.StatusOK, authResponse{
		Token: token,
		User:  userResponse{ID: u.ID, Email: u.Email, Role: string(u.Role)},
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Session reports the authenticated identity, or 401 when no session exists.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"user_id": userID,
		"email":   utils.GetUserEmailFromContext(r.Context()),
		"role":    utils.GetUserRoleFromContext(r.Context()),
	})
}
