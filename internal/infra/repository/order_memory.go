package repository

import (
	"context"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// OrderMemoryRepository はプロセス内メモリだけで注文を保持する実装。
// 再起動で消える前提（永続化は仕様外）。
// リクエストは並行に来るため、全操作をmutexで直列化する。
type OrderMemoryRepository struct {
	mu     sync.Mutex
	orders []model.Order
}

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{}
}

func (r *OrderMemoryRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == order.ID {
			return model.Order{}, repo.ErrDuplicateID
		}
	}

	order.Items = copyItems(order.Items)
	r.orders = append(r.orders, order)
	return order, nil
}

// List は受付順の全注文を返す（コピー）。
func (r *OrderMemoryRepository) List(ctx context.Context) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		o.Items = copyItems(o.Items)
		out = append(out, o)
	}
	return out, nil
}

func (r *OrderMemoryRepository) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == orderID {
			o.Items = copyItems(o.Items)
			return o, nil
		}
	}
	return model.Order{}, repo.ErrNotFound
}

func (r *OrderMemoryRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == orderID {
			r.orders[i].Status = status
			return nil
		}
	}
	return repo.ErrNotFound
}

// DeleteByID は一致した1件だけを取り除く。完了の合図であり、アーカイブはしない。
func (r *OrderMemoryRepository) DeleteByID(ctx context.Context, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == orderID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func copyItems(items []model.OrderItem) []model.OrderItem {
	out := make([]model.OrderItem, len(items))
	copy(out, items)
	return out
}
