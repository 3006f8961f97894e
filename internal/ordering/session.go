package ordering

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/cart"
	"app/internal/client"
	"app/internal/domain/model"
)

// ローカル検証エラー。これらの場合はネットワークに一切出ない。
var (
	ErrTableRequired = errors.New("table id is required")
	ErrNameRequired  = errors.New("customer name is required")
	ErrCartEmpty     = errors.New("cart is empty")
)

// Session は1テーブル分の注文フロー。
// カートを組み立てて送信し、確認画面用のスナップショットを受け取る。
type Session struct {
	TableID      string
	CustomerName string
	Cart         *cart.Cart

	api *client.Client
}

func NewSession(api *client.Client, tableID string) *Session {
	return &Session{
		TableID: tableID,
		Cart:    cart.New(),
		api:     api,
	}
}

// Confirmation は送信成功時のスナップショット。
// 以後カタログの価格が変わっても、ここの内容は変化しない。
type Confirmation struct {
	OrderID      string
	TableNumber  string
	CustomerName string
	Items        []cart.Line
	Total        model.Price
	Timestamp    time.Time
}

// Submit はローカル検証→送信の順で進む。
// テーブル・名前・カートのどれかが空なら送信せずにエラーを返す。
func (s *Session) Submit(ctx context.Context) (Confirmation, error) {
	table := strings.TrimSpace(s.TableID)
	if table == "" {
		return Confirmation{}, ErrTableRequired
	}
	name := strings.TrimSpace(s.CustomerName)
	if name == "" {
		return Confirmation{}, ErrNameRequired
	}
	if s.Cart.Len() == 0 {
		return Confirmation{}, ErrCartEmpty
	}

	lines := s.Cart.Lines()
	items := make([]client.OrderItemDraft, 0, len(lines))
	for _, l := range lines {
		items = append(items, client.OrderItemDraft{
			MenuItemID: l.Item.ID,
			Quantity:   l.Quantity,
			Price:      l.Item.Price, // 送信時点の価格を固定する
		})
	}

	created, err := s.api.SubmitOrder(ctx, client.OrderDraft{
		TableNumber:  table,
		CustomerName: name,
		Status:       string(model.OrderStatusSentToKitchen),
		Type:         "qr",
		Items:        items,
	})
	if err != nil {
		return Confirmation{}, err
	}

	return Confirmation{
		OrderID:      created.OrderID,
		TableNumber:  table,
		CustomerName: name,
		Items:        lines,
		Total:        s.Cart.Total(),
		Timestamp:    time.Now(),
	}, nil
}
