package handler

import (
	"net/http"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/address"
	"github.com/AswiniParameswaran/GreenCart-System/internal/order"
	"github.com/AswiniParameswaran/GreenCart-System/internal/user"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"
)

type UserHandler struct {
	users     user.Service
	addresses address.Service
	orders    order.Service
}

func NewUserHandler(users user.Service, addresses address.Service, orders order.Service) *UserHandler {
	return &UserHandler{users: users, addresses: addresses, orders: orders}
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	caller, _ := utils.CallerFromContext(r.Context())

	users, err := h.users.GetAllUsers(r.Context(), caller)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, *toUserDTO(u))
	}

	writeJSON(w, Response{
		Status:   http.StatusOK,
		Message:  "successful",
		UserList: dtos,
	})
}

// GetMyInfo returns the caller's profile together with their shipping
// address and order history. A missing address or an empty history is not
// an error for this view.
func (h *UserHandler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		writeError(w, r, apperr.New(apperr.Unauthenticated, "authenticated user not found"))
		return
	}

	u, err := h.users.GetUser(r.Context(), caller.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	dto := toUserDTO(u)

	if addr, err := h.addresses.GetAddress(r.Context(), caller); err == nil {
		dto.Address = toAddressDTO(addr)
	} else if !apperr.IsKind(err, apperr.NotFound) {
		writeError(w, r, err)
		return
	}

	page, err := h.orders.FilterItems(r.Context(), caller, order.FilterCriteria{}, order.PageRequest{Size: order.MaxPageSize})
	if err == nil {
		dto.OrderItems = toOrderItemDTOs(page.Content)
	} else if !apperr.IsKind(err, apperr.NotFound) {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:  http.StatusOK,
		Message: "successful",
		User:    dto,
	})
}
