package model

import "time"

// TableScan はテーブルQRコードの読み取り記録（集計用）。
type TableScan struct {
	TableID   string    `json:"tableId"`
	ScannedAt time.Time `json:"scannedAt"`
}
