package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ErrDuplicateID はid衝突時の安全弁。UUID採番では実質発生しない。
var ErrDuplicateID = errors.New("duplicate order id")

// 注文の保存・取得だけを約束。プロセス生存中のみ保持される。
// 明細のメニューidはカタログと照合しない（表示側が寛容に扱う）。
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	DeleteByID(ctx context.Context, orderID string) error
}
