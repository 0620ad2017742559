package order

import (
	"context"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/logger"
	"github.com/AswiniParameswaran/GreenCart-System/internal/product"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogStore is the slice of the product catalog the order engine needs:
// existence plus the current unit price.
type CatalogStore interface {
	GetProduct(ctx context.Context, id uint) (*product.Product, error)
}

type Service interface {
	PlaceOrder(ctx context.Context, caller utils.Caller, req OrderRequest) (*Order, error)
	UpdateItemStatus(ctx context.Context, caller utils.Caller, itemID uint, statusName string) (*OrderItem, error)
	FilterItems(ctx context.Context, caller utils.Caller, criteria FilterCriteria, page PageRequest) (*ItemPage, error)
}

type service struct {
	repo    Repository
	catalog CatalogStore
}

func NewService(repo Repository, catalog CatalogStore) Service {
	return &service{repo: repo, catalog: catalog}
}

// PlaceOrder validates and prices a multi-item order request, then persists
// the order and all its items in a single transaction.
func (s *service) PlaceOrder(ctx context.Context, caller utils.Caller, req OrderRequest) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Uint("user_id", caller.ID),
		zap.Int("item_count", len(req.Items)),
	)

	if _, err := Authorize(caller, OpPlaceOrder); err != nil {
		return nil, err
	}

	if len(req.Items) == 0 {
		return nil, apperr.New(apperr.Invalid, "order must contain at least one item")
	}
	if len(req.Items) > MaxItemsPerOrder {
		return nil, apperr.New(apperr.Invalid, "too many items in order")
	}

	items := make([]OrderItem, 0, len(req.Items))
	sum := decimal.Zero

	for _, ir := range req.Items {
		if ir.Quantity <= 0 || ir.Quantity > MaxQuantity {
			return nil, apperr.Newf(apperr.Invalid, "invalid quantity for product id: %d", ir.ProductID)
		}

		p, err := s.catalog.GetProduct(ctx, ir.ProductID)
		if err != nil {
			log.Warn("product lookup failed", zap.Uint("product_id", ir.ProductID), zap.Error(err))
			return nil, err
		}

		// Price is copied at placement time; later catalog changes never
		// alter past orders.
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(ir.Quantity)))
		sum = sum.Add(lineTotal)

		items = append(items, OrderItem{
			ProductID: p.ID,
			UserID:    caller.ID,
			Quantity:  ir.Quantity,
			UnitPrice: p.Price,
			LineTotal: lineTotal,
			Status:    StatusPending,
		})
	}

	// A strictly positive client-supplied total is trusted verbatim over the
	// computed sum. See DESIGN.md for the open pricing-integrity question.
	total := sum
	if req.TotalPrice != nil && req.TotalPrice.IsPositive() {
		total = *req.TotalPrice
	}
	if !total.IsPositive() {
		return nil, apperr.New(apperr.Invalid, "total price must be greater than zero")
	}

	o := &Order{
		TotalPrice: total,
		Items:      items,
	}

	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		log.Error("failed to persist order", zap.Error(err))
		return nil, err
	}

	log.Info("order placed",
		zap.Uint("order_id", o.ID),
		zap.String("total_price", o.TotalPrice.String()),
	)
	return o, nil
}

// UpdateItemStatus overwrites an order item's status. Any recognized status
// may follow any other.
func (s *service) UpdateItemStatus(ctx context.Context, caller utils.Caller, itemID uint, statusName string) (*OrderItem, error) {
	if _, err := Authorize(caller, OpUpdateItemStatus); err != nil {
		return nil, err
	}

	item, err := s.repo.GetOrderItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	st, err := ParseStatus(statusName)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateOrderItemStatus(ctx, item.ID, st); err != nil {
		return nil, err
	}
	item.Status = st

	logger.FromCtx(ctx).Info("order item status updated",
		zap.Uint("order_item_id", item.ID),
		zap.String("status", string(st)),
	)
	return item, nil
}

// FilterItems runs an ad-hoc filtered, paginated query over order items.
// Non-admin callers are scoped to their own items regardless of the
// criteria they supply. An empty result page is a not-found condition, not
// an empty success.
func (s *service) FilterItems(ctx context.Context, caller utils.Caller, criteria FilterCriteria, page PageRequest) (*ItemPage, error) {
	scope, err := Authorize(caller, OpFilterItems)
	if err != nil {
		return nil, err
	}
	if scope.OwnerID != nil {
		criteria.OwnerID = scope.OwnerID
	}

	page = page.Normalize()

	items, total, err := s.repo.QueryOrderItems(ctx, criteria, page)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.New(apperr.NotFound, "no order found")
	}

	totalPages := int((total + int64(page.Size) - 1) / int64(page.Size))

	return &ItemPage{
		Content:       items,
		TotalPages:    totalPages,
		TotalElements: total,
	}, nil
}
