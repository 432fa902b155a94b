package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/gestionpme/api-gestion/internal/apperr"
	"github.com/gestionpme/api-gestion/internal/auth"
	"github.com/gestionpme/api-gestion/internal/utils"
)

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Handler exposes the /api/utilisateur resource plus the login endpoint.
type Handler struct {
	Service *Service
	Tokens  *auth.TokenManager
}

func NewHandler(service *Service, tokens *auth.TokenManager) *Handler {
	return &Handler{Service: service, Tokens: tokens}
}

// Login exchanges credentials for a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Payload invalide")
		return
	}

	u, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Identifiants invalides")
		return
	}

	token, err := h.Tokens.Generate(u.ID, u.Email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la génération du token")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.List()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la liste des utilisateurs")
		return
	}
	utils.RespondJSON(w, http.StatusOK, users)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}
	u, err := h.Service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Utilisateur non trouvé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur interne")
		return
	}
	utils.RespondJSON(w, http.StatusOK, u)
}

// Create is the self-registration endpoint; it stays public even with JWT
// enabled.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Payload invalide")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "Name, email et password sont requis")
		return
	}

	u, err := h.Service.Create(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			utils.RespondError(w, http.StatusConflict, "Cet email est déjà utilisé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la création de l'utilisateur")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, u)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Payload invalide")
		return
	}

	u, err := h.Service.Update(uint(id), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			utils.RespondError(w, http.StatusNotFound, "Utilisateur non trouvé")
		case errors.Is(err, apperr.ErrConflict):
			utils.RespondError(w, http.StatusConflict, "Cet email est déjà utilisé")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la mise à jour de l'utilisateur")
		}
		return
	}
	utils.RespondJSON(w, http.StatusOK, u)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}
	if err := h.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Utilisateur non trouvé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la suppression de l'utilisateur")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Ping is a public liveness check.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"message":   "ping",
		"timestamp": time.Now(),
	})
}
