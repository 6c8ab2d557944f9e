package ledger

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/splitledger/pkg/response"
)

// Handler handles HTTP requests for balance and settlement views
type Handler struct {
	service *Service
}

// NewHandler creates a new ledger handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for ledger endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/groups/{groupId}/balances", h.GroupBalances)
	r.Get("/groups/{groupId}/settle-up", h.SettleUp)

	return r
}

// GroupBalances handles GET /ledger/groups/{groupId}/balances
// @Summary      Get group balances
// @Description  Compute the net balance of every group member from expenses and payments in the group currency
// @Tags         ledger
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=BalanceSheetResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /ledger/groups/{groupId}/balances [get]
func (h *Handler) GroupBalances(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	sheet, err := h.service.GroupBalances(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute balances")
		return
	}

	response.JSON(w, http.StatusOK, sheet.ToResponse())
}

// SettleUp handles GET /ledger/groups/{groupId}/settle-up
// @Summary      Suggest settlement payments
// @Description  Reduce the group's balances to a short list of payer-to-recipient transactions that settle everyone up
// @Tags         ledger
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=SettlementPlanResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /ledger/groups/{groupId}/settle-up [get]
func (h *Handler) SettleUp(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	plan, err := h.service.SettleUp(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute settlement plan")
		return
	}

	response.JSON(w, http.StatusOK, plan.ToResponse())
}
