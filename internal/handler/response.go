package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/logger"

	"go.uber.org/zap"
)

// Response is the uniform envelope returned by every endpoint. Status echoes
// the HTTP status code; payload fields are populated per operation and
// omitted otherwise.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`

	Token          string `json:"token,omitempty"`
	Role           string `json:"role,omitempty"`
	ExpirationTime string `json:"expirationTime,omitempty"`

	User     *UserDTO  `json:"user,omitempty"`
	UserList []UserDTO `json:"userList,omitempty"`

	Category     *CategoryDTO  `json:"category,omitempty"`
	CategoryList []CategoryDTO `json:"categoryList,omitempty"`

	Product     *ProductDTO  `json:"product,omitempty"`
	ProductList []ProductDTO `json:"productList,omitempty"`

	Address *AddressDTO `json:"address,omitempty"`

	Order         *OrderDTO      `json:"order,omitempty"`
	OrderItem     *OrderItemDTO  `json:"orderItem,omitempty"`
	OrderItemList []OrderItemDTO `json:"orderItemList,omitempty"`

	TotalPage    int   `json:"totalPage,omitempty"`
	TotalElement int64 `json:"totalElement,omitempty"`
}

func writeJSON(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	message := "internal server error"

	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	log := logger.FromCtx(r.Context()).With(
		zap.String("layer", "handler"),
		zap.String("path", r.URL.Path),
	)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
	} else {
		log.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	}

	writeJSON(w, Response{Status: status, Message: message})
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Wrap(apperr.Invalid, "invalid request body", err)
	}
	return nil
}
