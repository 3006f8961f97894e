package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// TableUsecase はテーブルQR読み取りの記録（集計用）。
type TableUsecase struct {
	scanRepo repo.TableScanRepository
	clock    Clock
}

func NewTableUsecase(scanRepo repo.TableScanRepository, clock Clock) *TableUsecase {
	return &TableUsecase{scanRepo: scanRepo, clock: clock}
}

type ScanTableOutput struct {
	Success   bool      `json:"success"`
	TableID   string    `json:"tableId"`
	Timestamp time.Time `json:"timestamp"`
}

func (u *TableUsecase) Scan(ctx context.Context, tableID string) (ScanTableOutput, error) {
	if strings.TrimSpace(tableID) == "" {
		return ScanTableOutput{}, NewHTTPError(http.StatusBadRequest, "invalid table id")
	}

	now := u.clock.Now()
	if err := u.scanRepo.Record(ctx, model.TableScan{TableID: tableID, ScannedAt: now}); err != nil {
		return ScanTableOutput{}, NewHTTPError(http.StatusInternalServerError, "failed to record scan")
	}

	return ScanTableOutput{Success: true, TableID: tableID, Timestamp: now}, nil
}
