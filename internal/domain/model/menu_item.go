package model

// MenuItem は画像スキャンで生成されるメニュー1件。
// id は起動中のカタログ内で一意（スキャン順に採番）。
// image はオーバーライド結合のキーで、/images/Menu/... のパス。
type MenuItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
	Category    string `json:"category"` // "MAIN / SUB" 形式
	Available   bool   `json:"available"`
	Image       string `json:"image"`
}
