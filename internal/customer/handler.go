package customer

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gestionpme/api-gestion/internal/apperr"
	"github.com/gestionpme/api-gestion/internal/utils"
)

type createCustomerRequest struct {
	Surnom string `json:"surnom"`
	UserID uint   `json:"user_id"`
}

type updateCustomerRequest struct {
	Surnom *string `json:"surnom"`
	UserID *uint   `json:"user_id"`
}

// Handler exposes the /api/client resource.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Service.List()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la liste des clients")
		return
	}
	utils.RespondJSON(w, http.StatusOK, FormatList(customers))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}
	c, err := h.Service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Client non trouvé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur interne")
		return
	}
	utils.RespondJSON(w, http.StatusOK, Format(*c))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Payload invalide")
		return
	}
	if req.Surnom == "" || req.UserID == 0 {
		utils.RespondError(w, http.StatusBadRequest, "Surnom et user_id sont requis")
		return
	}

	c, err := h.Service.Create(req.Surnom, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrConflict):
			utils.RespondError(w, http.StatusConflict, "Ce surnom est déjà utilisé")
		case errors.Is(err, apperr.ErrInvalidReference):
			utils.RespondError(w, http.StatusBadRequest, "Utilisateur non trouvé")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la création du client")
		}
		return
	}
	utils.RespondJSON(w, http.StatusCreated, Format(*c))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}

	var req updateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Payload invalide")
		return
	}

	c, err := h.Service.Update(uint(id), req.Surnom, req.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Client non trouvé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la mise à jour du client")
		return
	}
	utils.RespondJSON(w, http.StatusOK, Format(*c))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}
	if err := h.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Client non trouvé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la suppression du client")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
