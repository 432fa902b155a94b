package ticket

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gestionpme/api-gestion/internal/apperr"
	"github.com/gestionpme/api-gestion/internal/utils"
)

type createTicketRequest struct {
	Titre       string `json:"titre"`
	Description string `json:"description"`
	Sales       []uint `json:"sales"`
}

type updateTicketRequest struct {
	Titre       *string `json:"titre"`
	Description *string `json:"description"`
	Sales       []uint  `json:"sales"`
}

// Handler exposes the /api/ticket resource.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.Service.List()
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la liste des tickets")
		return
	}
	utils.RespondJSON(w, http.StatusOK, FormatList(tickets))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}
	t, err := h.Service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Ticket non trouvé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur interne")
		return
	}
	utils.RespondJSON(w, http.StatusOK, Format(*t))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Payload invalide")
		return
	}
	if req.Titre == "" || req.Description == "" {
		utils.RespondError(w, http.StatusBadRequest, "Titre et description sont requis")
		return
	}

	t, err := h.Service.Create(req.Titre, req.Description, req.Sales)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			utils.RespondError(w, http.StatusConflict, "Ce titre est déjà utilisé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la création du ticket")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, Format(*t))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}

	var req updateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Payload invalide")
		return
	}

	t, err := h.Service.Update(uint(id), req.Titre, req.Description, req.Sales)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Ticket non trouvé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la mise à jour du ticket")
		return
	}
	utils.RespondJSON(w, http.StatusOK, Format(*t))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "ID invalide")
		return
	}
	if err := h.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Ticket non trouvé")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de la suppression du ticket")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
