package model

import "time"

type OrderStatus string

const (
	OrderStatusSentToKitchen OrderStatus = "sent_to_kitchen"
	OrderStatusInProgress    OrderStatus = "in_progress"
	OrderStatusReady         OrderStatus = "ready"
	OrderStatusServed        OrderStatus = "served"
)

// Next は1段先のステータスを返す。served は終端なので ok=false。
// 遷移は前進のみ（sent_to_kitchen → in_progress → ready → served）。
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusSentToKitchen:
		return OrderStatusInProgress, true
	case OrderStatusInProgress:
		return OrderStatusReady, true
	case OrderStatusReady:
		return OrderStatusServed, true
	default:
		return s, false
	}
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusSentToKitchen, OrderStatusInProgress, OrderStatusReady, OrderStatusServed:
		return true
	default:
		return false
	}
}

// Order は受付済みの注文。
// id と timestamp は受付時にサーバー側で採番・打刻する。
type Order struct {
	ID           string      `json:"id"`
	TableNumber  string      `json:"tableNumber"`
	CustomerName string      `json:"customerName"`
	Type         string      `json:"type"`
	Status       OrderStatus `json:"status"`
	Items        []OrderItem `json:"items"`
	Timestamp    time.Time   `json:"timestamp"`
}

// Total は明細の単価×数量の合計。
func (o Order) Total() Price {
	var total float64
	for _, it := range o.Items {
		total += it.Price.Float64() * float64(it.Quantity)
	}
	return Price(total)
}
