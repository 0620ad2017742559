package order

import (
	"fmt"
	"strings"
	"time"
)

// FilterCriteria describes an ad-hoc query over order items. Every field is
// optional; absent criteria constrain nothing.
type FilterCriteria struct {
	Status      *OrderStatus
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	ItemID      *uint
	OwnerID     *uint
}

// Clause contributes one SQL condition against the order_items alias "oi".
// It receives the next positional placeholder index and returns the rendered
// condition with its arguments. A nil Clause is the identity element: it
// constrains nothing and is skipped by CompileWhere.
type Clause func(argIdx int) (cond string, args []any)

func HasStatus(status *OrderStatus) Clause {
	if status == nil {
		return nil
	}
	return func(i int) (string, []any) {
		return fmt.Sprintf("oi.status = $%d", i), []any{*status}
	}
}

func CreatedBetween(from, to *time.Time) Clause {
	switch {
	case from != nil && to != nil:
		return func(i int) (string, []any) {
			return fmt.Sprintf("oi.created_at BETWEEN $%d AND $%d", i, i+1), []any{*from, *to}
		}
	case from != nil:
		return func(i int) (string, []any) {
			return fmt.Sprintf("oi.created_at >= $%d", i), []any{*from}
		}
	case to != nil:
		return func(i int) (string, []any) {
			return fmt.Sprintf("oi.created_at <= $%d", i), []any{*to}
		}
	default:
		return nil
	}
}

func HasItemID(id *uint) Clause {
	if id == nil {
		return nil
	}
	return func(i int) (string, []any) {
		return fmt.Sprintf("oi.id = $%d", i), []any{*id}
	}
}

func HasOwner(id *uint) Clause {
	if id == nil {
		return nil
	}
	return func(i int) (string, []any) {
		return fmt.Sprintf("oi.user_id = $%d", i), []any{*id}
	}
}

// Clauses expands the criteria into its clause set.
func (c FilterCriteria) Clauses() []Clause {
	return []Clause{
		HasStatus(c.Status),
		CreatedBetween(c.CreatedFrom, c.CreatedTo),
		HasItemID(c.ItemID),
		HasOwner(c.OwnerID),
	}
}

// CompileWhere AND-combines the non-nil clauses into a WHERE fragment with
// positional placeholders starting at $1. With no effective clauses it
// returns an empty fragment.
func CompileWhere(clauses []Clause) (string, []any) {
	var conds []string
	var args []any

	idx := 1
	for _, clause := range clauses {
		if clause == nil {
			continue
		}
		cond, cargs := clause(idx)
		conds = append(conds, cond)
		args = append(args, cargs...)
		idx += len(cargs)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest is a zero-based page index plus page size.
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p PageRequest) LimitOffset() (int, int) {
	return p.Size, p.Page * p.Size
}

type ItemPage struct {
	Content       []OrderItem
	TotalPages    int
	TotalElements int64
}
