package catalog

import (
	"app/internal/domain/model"
)

// Catalog は起動時に1回だけ構築される読み取り専用のメニュー集合。
// 再スキャンやファイル監視はしない（画像を増やしたら再起動する運用）。
type Catalog struct {
	items []model.MenuItem
	byID  map[int64]model.MenuItem
}

func newCatalog(items []model.MenuItem) *Catalog {
	byID := make(map[int64]model.MenuItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return &Catalog{items: items, byID: byID}
}

// Items はid順の全メニューを返す（コピー）。
func (c *Catalog) Items() []model.MenuItem {
	out := make([]model.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) ItemByID(id int64) (model.MenuItem, bool) {
	it, ok := c.byID[id]
	return it, ok
}

func (c *Catalog) Len() int {
	return len(c.items)
}
