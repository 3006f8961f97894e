package model

// OrderItem は注文の明細1行。
// Price は送信時点のスナップショットで、以後のカタログ変更と独立。
type OrderItem struct {
	MenuItemID int64 `json:"menuItemId"`
	Quantity   int64 `json:"quantity"`
	Price      Price `json:"price"`
}
