package customer

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/user-management/internal/core/pagination"
	"github.com/frahmantamala/user-management/internal/transport"
	"github.com/frahmantamala/user-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(dto CreateCustomerDTO) (*Profile, error)
	GetByID(id string) (*Profile, error)
	Update(id string, dto UpdateCustomerDTO) (*Profile, error)
	Delete(id string) (*Profile, error)
	List(query ListQuery) (*pagination.Result[*Profile], error)
	FindByLoyaltyLevel(level LoyaltyLevel) ([]*Profile, error)
	UpdateLoyaltyLevel(id string, dto UpdateLoyaltyDTO) (*Profile, error)
	UpdateOrderStats(id string, dto OrderStatsDTO) (*Profile, error)
	TopCustomers(limit int) ([]*Profile, error)
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

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var dto CreateCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateCustomer: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, profile)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateCustomer: invalid request body", "error", err, "profile_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.Service.Update(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.Delete(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, profile)
}

// ListCustomers handles GET /customers with name/company/loyaltyLevel
// filters and pagination.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	page, limit, sortBy, sortOrder, err := pagination.ParseQuery(r.URL.Query())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	query := ListQuery{
		Name:         r.URL.Query().Get("name"),
		Company:      r.URL.Query().Get("company"),
		LoyaltyLevel: r.URL.Query().Get("loyaltyLevel"),
		Page:         page,
		Limit:        limit,
		SortBy:       sortBy,
		SortOrder:    sortOrder,
	}

	result, err := h.Service.List(query)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) GetCustomersByLoyaltyLevel(w http.ResponseWriter, r *http.Request) {
	level := LoyaltyLevel(chi.URLParam(r, "level"))

	profiles, err := h.Service.FindByLoyaltyLevel(level)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, profiles)
}

func (h *Handler) UpdateLoyaltyLevel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateLoyaltyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateLoyaltyLevel: invalid request body", "error", err, "profile_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.Service.UpdateLoyaltyLevel(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) UpdateOrderStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto OrderStatsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateOrderStats: invalid request body", "error", err, "profile_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.Service.UpdateOrderStats(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, profile)
}

// GetTopCustomers handles GET /customers/top?limit=N, ordered by total
// spend descending.
func (h *Handler) GetTopCustomers(w http.ResponseWriter, r *http.Request) {
	limit := DefaultTopCustomersLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	profiles, err := h.Service.TopCustomers(limit)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, profiles)
}
