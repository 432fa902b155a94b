package sale

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gestionpme/api-gestion/internal/apperr"
	"github.com/gestionpme/api-gestion/internal/utils"
)

type createSaleRequest struct {
	Titre       string `json:"titre"`
	Description string `json:"description"`
	CustomerID  uint   `json:"customer_id"`
	Materials   []uint `json:"materials"`
}

type updateSaleRequest struct {
	Titre       *string `json:"titre"`
	Description *string `json:"description"`
	CustomerID  *uint   `json:"customer_id"`
	Materials   []uint  `json:"materials"`
}

// Handler exposes the /api/sale resource.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Service.List()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la liste des ventes")
		return
	}
	utils.RespondJSON(w, http.StatusOK, FormatList(sales))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}
	s, err := h.Service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Sale non trouvé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur interne")
		return
	}
	utils.RespondJSON(w, http.StatusOK, Format(*s))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Payload invalide")
		return
	}
	if req.Titre == "" || req.Description == "" || req.CustomerID == 0 {
		utils.RespondError(w, http.StatusBadRequest, "Titre, description et customer_id sont requis")
		return
	}

	s, err := h.Service.Create(req.Titre, req.Description, req.CustomerID, req.Materials)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrConflict):
			utils.RespondError(w, http.StatusConflict, "Ce titre est déjà utilisé")
		case errors.Is(err, apperr.ErrInvalidReference):
			utils.RespondError(w, http.StatusBadRequest, "Customer non trouvé")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la création de la vente")
		}
		return
	}
	utils.RespondJSON(w, http.StatusCreated, Format(*s))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}

	var req updateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Payload invalide")
		return
	}

	s, err := h.Service.Update(uint(id), req.Titre, req.Description, req.CustomerID, req.Materials)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Sale non trouvé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la mise à jour de la vente")
		return
	}
	utils.RespondJSON(w, http.StatusOK, Format(*s))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}
	if err := h.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Sale non trouvé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la suppression de la vente")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
