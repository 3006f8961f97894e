package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// OrderUsecase は /api/orders の業務ロジック。
// 受付時にidとtimestampを採番し、ステータスは常にsent_to_kitchenから始める。
type OrderUsecase struct {
	orderRepo repo.OrderRepository
	idGen     IDGenerator
	clock     Clock
}

func NewOrderUsecase(orderRepo repo.OrderRepository, idGen IDGenerator, clock Clock) *OrderUsecase {
	return &OrderUsecase{
		orderRepo: orderRepo,
		idGen:     idGen,
		clock:     clock,
	}
}

type SubmitOrderItemInput struct {
	MenuItemID int64
	Quantity   int64
	Price      model.Price
}

type SubmitOrderInput struct {
	TableNumber  string
	CustomerName string
	Type         string
	Items        []SubmitOrderItemInput
}

type SubmitOrderOutput struct {
	OrderID string `json:"orderId"`
}

// Submit は注文を受け付ける。
// 必須項目の検証はクライアント任せにせず、ここでも行う
// （どの呼び出し元から来ても空の注文は保存されない）。
func (u *OrderUsecase) Submit(ctx context.Context, in SubmitOrderInput) (SubmitOrderOutput, error) {
	if strings.TrimSpace(in.TableNumber) == "" {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusBadRequest, "tableNumber is required")
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusBadRequest, "customerName is required")
	}
	if len(in.Items) == 0 {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusBadRequest, "items must not be empty")
	}
	for _, it := range in.Items {
		if it.MenuItemID <= 0 {
			return SubmitOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid menuItemId")
		}
		if it.Quantity < 1 {
			return SubmitOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		if it.Price < 0 {
			return SubmitOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid price")
		}
	}

	items := make([]model.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, model.OrderItem{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Price:      it.Price, // 送信時点のスナップショット
		})
	}

	order := model.Order{
		ID:           u.idGen.NewID(),
		TableNumber:  strings.TrimSpace(in.TableNumber),
		CustomerName: strings.TrimSpace(in.CustomerName),
		Type:         in.Type,
		Status:       model.OrderStatusSentToKitchen, // クライアントの申告は信用しない
		Items:        items,
		Timestamp:    u.clock.Now(),
	}

	created, err := u.orderRepo.Create(ctx, order)
	if err != nil {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "failed to submit order")
	}

	return SubmitOrderOutput{OrderID: created.ID}, nil
}

// List は受付順の全注文を返す。
func (u *OrderUsecase) List(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "failed to list orders")
	}
	return orders, nil
}

type AdvanceOrderOutput struct {
	Status model.OrderStatus `json:"status"`
}

// Advance はステータスを1段だけ前へ進める。
// servedは終端なので何もしない（200でservedを返す）。
// ステータスの真実はストア側に置き、キッチン表示は次のポーリングで追従する。
func (u *OrderUsecase) Advance(ctx context.Context, orderID string) (AdvanceOrderOutput, error) {
	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return AdvanceOrderOutput{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return AdvanceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "failed to advance order")
	}

	next, ok := order.Status.Next()
	if !ok {
		return AdvanceOrderOutput{Status: order.Status}, nil
	}

	if err := u.orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
		if err == repo.ErrNotFound {
			return AdvanceOrderOutput{}, NewHTTPError(http.StatusNotFound, "Order not found")
		}
		return AdvanceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "failed to advance order")
	}

	return AdvanceOrderOutput{Status: next}, nil
}

// Delete は注文を完全に取り除く（提供完了の合図。アーカイブはしない）。
func (u *OrderUsecase) Delete(ctx context.Context, orderID string) error {
	err := u.orderRepo.DeleteByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "failed to delete order")
	}
	return nil
}
