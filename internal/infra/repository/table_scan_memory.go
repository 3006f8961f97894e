package repository

import (
	"context"
	"sync"

	"app/internal/domain/model"
)

// TableScanMemoryRepository は読み取り記録をメモリに積むだけの実装。
type TableScanMemoryRepository struct {
	mu    sync.Mutex
	scans []model.TableScan
}

func NewTableScanMemoryRepository() *TableScanMemoryRepository {
	return &TableScanMemoryRepository{}
}

func (r *TableScanMemoryRepository) Record(ctx context.Context, scan model.TableScan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.scans = append(r.scans, scan)
	return nil
}

func (r *TableScanMemoryRepository) CountByTable(ctx context.Context, tableID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, s := range r.scans {
		if s.TableID == tableID {
			n++
		}
	}
	return n, nil
}
