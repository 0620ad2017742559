package handler

import (
	"time"

	"github.com/AswiniParameswaran/GreenCart-System/internal/address"
	"github.com/AswiniParameswaran/GreenCart-System/internal/category"
	"github.com/AswiniParameswaran/GreenCart-System/internal/order"
	"github.com/AswiniParameswaran/GreenCart-System/internal/product"
	"github.com/AswiniParameswaran/GreenCart-System/internal/user"

	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phoneNumber"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type ProductRequest struct {
	CategoryID  uint             `json:"categoryId"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ImageURL    string           `json:"imageUrl"`
	Price       *decimal.Decimal `json:"price"`
}

type AddressRequest struct {
	Street  *string `json:"street"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zipCode"`
	Country *string `json:"country"`
}

type PlaceOrderRequest struct {
	Items      []PlaceOrderItem `json:"items"`
	TotalPrice *decimal.Decimal `json:"totalPrice,omitempty"`
}

type PlaceOrderItem struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type UserDTO struct {
	ID         uint           `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phoneNumber"`
	Role       string         `json:"role"`
	Address    *AddressDTO    `json:"address,omitempty"`
	OrderItems []OrderItemDTO `json:"orderItemList,omitempty"`
}

type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProductDTO struct {
	ID          uint            `json:"id"`
	CategoryID  uint            `json:"categoryId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type AddressDTO struct {
	ID      uint   `json:"id"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type OrderDTO struct {
	ID         uint            `json:"id"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
	Items      []OrderItemDTO  `json:"orderItemList"`
}

type OrderItemDTO struct {
	ID        uint            `json:"id"`
	OrderID   uint            `json:"orderId"`
	ProductID uint            `json:"productId"`
	UserID    uint            `json:"userId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

func toUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

func toCategoryDTO(c *category.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{ID: c.ID, Name: c.Name}
}

func toProductDTO(p *product.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
	}
}

func toProductDTOs(products []*product.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, *toProductDTO(p))
	}
	return dtos
}

func toAddressDTO(a *address.Address) *AddressDTO {
	if a == nil {
		return nil
	}
	return &AddressDTO{
		ID:      a.ID,
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}

func toOrderItemDTO(item *order.OrderItem) *OrderItemDTO {
	if item == nil {
		return nil
	}
	return &OrderItemDTO{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		UserID:    item.UserID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		LineTotal: item.LineTotal,
		Status:    string(item.Status),
		CreatedAt: item.CreatedAt,
	}
}

func toOrderItemDTOs(items []order.OrderItem) []OrderItemDTO {
	dtos := make([]OrderItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *toOrderItemDTO(&items[i]))
	}
	return dtos
}

func toOrderDTO(o *order.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	return &OrderDTO{
		ID:         o.ID,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
		Items:      toOrderItemDTOs(o.Items),
	}
}
