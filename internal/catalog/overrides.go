package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"app/internal/domain/model"

	"go.uber.org/zap"
)

// Override はスキャン結果へ手動で上書きする部分レコード。
// image の完全一致でスキャン結果と結合する。id は上書きできない。
//   - Name / Category は空でない場合のみ置き換え
//   - Description / Available はキーが存在すれば置き換え（空文字・falseも有効）
//   - Price は数値または通貨文字列のとき置き換え
type Override struct {
	Image       string          `json:"image"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       json.RawMessage `json:"price"`
	Category    string          `json:"category"`
	Available   *bool           `json:"available"`
}

// LoadOverrides はJSONファイルからオーバーライドを読み込む。
// ファイルが無い・壊れている場合は警告してnilを返す（起動は止めない）。
func LoadOverrides(path string, logger *zap.Logger) []Override {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("menu overrides not loaded, proceeding with image-based menu only",
			zap.String("path", path), zap.Error(err))
		return nil
	}

	var entries []Override
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Warn("failed to parse menu overrides, ignoring",
			zap.String("path", path), zap.Error(err))
		return nil
	}

	logger.Info("loaded menu overrides", zap.String("path", path), zap.Int("entries", len(entries)))
	return entries
}

// applyOverrides は image 一致でオーバーライドを適用する。
// どのスキャン結果にも一致しないレコードは黙って捨てる。
func applyOverrides(items []model.MenuItem, overrides []Override, logger *zap.Logger) []model.MenuItem {
	if len(overrides) == 0 {
		return items
	}

	byImage := make(map[string]Override, len(overrides))
	for _, ov := range overrides {
		if ov.Image == "" {
			continue
		}
		byImage[ov.Image] = ov
	}

	for i, item := range items {
		ov, ok := byImage[item.Image]
		if !ok {
			continue
		}

		if ov.Name != "" {
			item.Name = ov.Name
		}
		if ov.Description != nil {
			item.Description = *ov.Description
		}
		if p, ok := overridePrice(ov.Price, item.Image, logger); ok {
			item.Price = p
		}
		if ov.Category != "" {
			item.Category = ov.Category
		}
		if ov.Available != nil {
			item.Available = *ov.Available
		}

		items[i] = item
	}

	return items
}

// overridePrice は価格オーバーライドを正規化する。
// 数値・文字列以外の型は上書きしない。解釈できない文字列は0に落として警告する。
func overridePrice(raw json.RawMessage, image string, logger *zap.Logger) (model.Price, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		if f < 0 {
			f = 0
		}
		return model.Price(f), true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		p := model.ParsePrice(s)
		if p == 0 && !strings.ContainsAny(s, "0123456789") {
			logger.Warn("unparseable override price, using 0",
				zap.String("image", image), zap.String("price", s))
		}
		return p, true
	}

	return 0, false
}
