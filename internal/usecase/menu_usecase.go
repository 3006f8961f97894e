package usecase

import (
	"context"

	"app/internal/catalog"
	"app/internal/domain/model"
)

// MenuUsecase は /api/menu の業務ロジック。
// カタログは起動時に構築済みの読み取り専用データ。
type MenuUsecase struct {
	catalog *catalog.Catalog
}

func NewMenuUsecase(c *catalog.Catalog) *MenuUsecase {
	return &MenuUsecase{catalog: c}
}

func (u *MenuUsecase) List(ctx context.Context) ([]model.MenuItem, error) {
	return u.catalog.Items(), nil
}
