package orders

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sebitservices/SaborHub-sub000/errs"
	"github.com/sebitservices/SaborHub-sub000/models"
)

// Store is the document-store surface the adapter needs. FindActiveOrder
// returns (nil, nil) when the table has no active order.
type Store interface {
	FindActiveOrder(ctx context.Context, tableID string) (*models.Order, error)
	CreateOrder(ctx context.Context, order models.Order) error
	AppendLines(ctx context.Context, orderID string, lines []models.OrderLine) error
	SetOrderStatus(ctx context.Context, orderID string, status string) error
	SetTableStatus(ctx context.Context, tableID string, status string) error
}

const defaultTimeout = 10 * time.Second

// Adapter maps cart submissions onto the order collection. At most one
// active order exists per table, enforced query-then-write: two
// concurrent submissions for the same table can both pass the lookup and
// the second one wins. Store calls are attempted exactly once; failures
// surface to the caller wrapped as ExternalStoreError with no retry.
type Adapter struct {
	store   Store
	timeout time.Duration
}

func NewAdapter(store Store) *Adapter {
	return &Adapter{store: store, timeout: defaultTimeout}
}

// SubmitCart confirms the cart lines for a table. With no active order it
// creates one and marks the table occupied; with an active order it
// appends the lines as-is. Lines are never merged with the existing
// order's lines by key: consolidation happens only within one cart
// session, repeated submissions append.
func (a *Adapter) SubmitCart(ctx context.Context, tableID string, lines []models.OrderLine, createdBy string) (*models.Order, error) {
	if tableID == "" {
		return nil, &errs.ValidationError{Field: "table_id", Reason: "is required"}
	}
	if len(lines) == 0 {
		return nil, &errs.ValidationError{Field: "lines", Reason: "cart is empty"}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	existing, err := a.store.FindActiveOrder(ctx, tableID)
	if err != nil {
		return nil, &errs.ExternalStoreError{Op: "find active order", Err: err}
	}

	if existing == nil {
		now := time.Now().UTC()
		order := models.Order{
			ID:         primitive.NewObjectID(),
			Table_id:   &tableID,
			Status:     models.OrderStatusActive,
			Lines:      lines,
			Created_at: now,
			Updated_at: now,
		}
		order.Order_id = order.ID.Hex()
		if createdBy != "" {
			order.Created_by = &createdBy
		}
		if err := a.store.CreateOrder(ctx, order); err != nil {
			return nil, &errs.ExternalStoreError{Op: "create order", Err: err}
		}
		if err := a.store.SetTableStatus(ctx, tableID, models.TableStatusOccupied); err != nil {
			return nil, &errs.ExternalStoreError{Op: "set table status", Err: err}
		}
		return &order, nil
	}

	if err := a.store.AppendLines(ctx, existing.Order_id, lines); err != nil {
		return nil, &errs.ExternalStoreError{Op: "append lines", Err: err}
	}
	existing.Lines = append(existing.Lines, lines...)
	return existing, nil
}

// CancelOrder cancels the table's active order, if any, and frees the
// table either way. Orders are never deleted, only marked cancelled.
// Calling it on a table with no active order is a no-op on the order
// side. The cancelled order id is returned, or "" when none existed.
func (a *Adapter) CancelOrder(ctx context.Context, tableID string) (string, error) {
	if tableID == "" {
		return "", &errs.ValidationError{Field: "table_id", Reason: "is required"}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	existing, err := a.store.FindActiveOrder(ctx, tableID)
	if err != nil {
		return "", &errs.ExternalStoreError{Op: "find active order", Err: err}
	}

	cancelledID := ""
	if existing != nil {
		if err := a.store.SetOrderStatus(ctx, existing.Order_id, models.OrderStatusCancelled); err != nil {
			return "", &errs.ExternalStoreError{Op: "set order status", Err: err}
		}
		cancelledID = existing.Order_id
	}
	if err := a.store.SetTableStatus(ctx, tableID, models.TableStatusFree); err != nil {
		return "", &errs.ExternalStoreError{Op: "set table status", Err: err}
	}
	return cancelledID, nil
}
