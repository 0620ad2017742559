package handler

import (
	"net/http"

	"github.com/AswiniParameswaran/GreenCart-System/internal/address"
	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"
)

type AddressHandler struct {
	addresses address.Service
}

func NewAddressHandler(addresses address.Service) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

// Save creates the caller's address on first use and updates it afterwards.
func (h *AddressHandler) Save(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		writeError(w, r, apperr.New(apperr.Unauthenticated, "authenticated user not found"))
		return
	}

	var req AddressRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	addr, preExisting, err := h.addresses.SaveAddress(r.Context(), caller, address.SaveAddressInput{
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Country: req.Country,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := "address created successfully"
	if preExisting {
		message = "address updated successfully"
	}

	writeJSON(w, Response{
		Status:  http.StatusOK,
		Message: message,
		Address: toAddressDTO(addr),
	})
}
