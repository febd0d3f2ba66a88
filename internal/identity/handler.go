package identity

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/user-management/internal/core/pagination"
	"github.com/frahmantamala/user-management/internal/transport"
	"github.com/frahmantamala/user-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(dto CreateIdentityDTO) (*Identity, error)
	GetByID(id string) (*Identity, error)
	Update(id string, dto UpdateIdentityDTO) (*Identity, error)
	Delete(id string) (*Identity, error)
	List(query ListQuery) (*pagination.Result[*Identity], error)
	GetByEmail(email string) (*Identity, error)
	GetByRole(role Role) ([]*Identity, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) CreateIdentity(w http.ResponseWriter, r *http.Request) {
	var dto CreateIdentityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateIdentity: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ident, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, ident)
}

func (h *Handler) GetIdentity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ident, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ident)
}

func (h *Handler) UpdateIdentity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateIdentityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateIdentity: invalid request body", "error", err, "identity_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ident, err := h.Service.Update(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ident)
}

func (h *Handler) DeleteIdentity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ident, err := h.Service.Delete(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ident)
}

// ListIdentities handles GET /identities with optional email/role filters
// and pagination.
func (h *Handler) ListIdentities(w http.ResponseWriter, r *http.Request) {
	page, limit, sortBy, sortOrder, err := pagination.ParseQuery(r.URL.Query())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	query := ListQuery{
		Email:     r.URL.Query().Get("email"),
		Role:      r.URL.Query().Get("role"),
		Page:      page,
		Limit:     limit,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}

	result, err := h.Service.List(query)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}
