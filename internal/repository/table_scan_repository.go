package repository

import (
	"context"

	"app/internal/domain/model"
)

// テーブルQRの読み取り記録（集計用）。
type TableScanRepository interface {
	Record(ctx context.Context, scan model.TableScan) error
	CountByTable(ctx context.Context, tableID string) (int64, error)
}
