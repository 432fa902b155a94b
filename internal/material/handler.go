package material

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/gestionpme/api-gestion/internal/apperr"
	"github.com/gestionpme/api-gestion/internal/utils"
)

type createMaterialRequest struct {
	Designation string `json:"designation"`
}

type updateMaterialRequest struct {
	Designation *string `json:"designation"`
}

// Handler exposes the /api/material resource.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	materials, err := h.Service.List()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la liste des matériels")
		return
	}
	utils.RespondJSON(w, http.StatusOK, materials)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}
	m, err := h.Service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Material non trouvé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur interne")
		return
	}
	utils.RespondJSON(w, http.StatusOK, m)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Payload invalide")
		return
	}
	if req.Designation == "" {
		utils.RespondError(w, http.StatusBadRequest, "Designation est requise")
		return
	}

	m, err := h.Service.Create(req.Designation)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			utils.RespondError(w, http.StatusConflict, "Cette designation est déjà utilisée")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la création du matériel")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, m)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}

	var req updateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Payload invalide")
		return
	}

	m, err := h.Service.Update(uint(id), req.Designation)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Material non trouvé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la mise à jour du matériel")
		return
	}
	utils.RespondJSON(w, http.StatusOK, m)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}
	if err := h.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Material non trouvé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la suppression du matériel")
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
