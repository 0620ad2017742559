package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/order"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"
)

type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	items := make([]order.OrderItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, order.OrderItemRequest{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	caller, _ := utils.CallerFromContext(r.Context())
	o, err := h.orders.PlaceOrder(r.Context(), caller, order.OrderRequest{
		Items:      items,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:  http.StatusOK,
		Message: "order was successfully placed",
		Order:   toOrderDTO(o),
	})
}

func (h *OrderHandler) UpdateItemStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	caller, _ := utils.CallerFromContext(r.Context())
	item, err := h.orders.UpdateItemStatus(r.Context(), caller, id, r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:    http.StatusOK,
		Message:   "order status updated successfully",
		OrderItem: toOrderItemDTO(item),
	})
}

func (h *OrderHandler) Filter(w http.ResponseWriter, r *http.Request) {
	criteria, page, err := parseFilterQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	caller, _ := utils.CallerFromContext(r.Context())
	result, err := h.orders.FilterItems(r.Context(), caller, criteria, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:        http.StatusOK,
		Message:       "successful",
		OrderItemList: toOrderItemDTOs(result.Content),
		TotalPage:     result.TotalPages,
		TotalElement:  result.TotalElements,
	})
}

func parseFilterQuery(r *http.Request) (order.FilterCriteria, order.PageRequest, error) {
	q := r.URL.Query()
	var criteria order.FilterCriteria
	var page order.PageRequest

	if v := q.Get("status"); v != "" {
		st, err := order.ParseStatus(v)
		if err != nil {
			return criteria, page, err
		}
		criteria.Status = &st
	}

	if v := q.Get("from"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return criteria, page, apperr.Wrap(apperr.Invalid, "invalid from timestamp", err)
		}
		criteria.CreatedFrom = &ts
	}

	if v := q.Get("to"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return criteria, page, apperr.Wrap(apperr.Invalid, "invalid to timestamp", err)
		}
		criteria.CreatedTo = &ts
	}

	if v := q.Get("itemId"); v != "" {
		id, err := utils.ToUint(v)
		if err != nil {
			return criteria, page, apperr.Wrap(apperr.Invalid, "invalid itemId", err)
		}
		criteria.ItemID = &id
	}

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return criteria, page, apperr.Wrap(apperr.Invalid, "invalid page", err)
		}
		page.Page = n
	}

	if v := q.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return criteria, page, apperr.Wrap(apperr.Invalid, "invalid size", err)
		}
		page.Size = n
	}

	return criteria, page, nil
}
