package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Price は正規化済みの金額（非負）。
// メニューや注文の価格は数値のほか "KSH 1,290" のような通貨文字列でも
// 届くため、JSONデコード時に数値へ正規化する。解釈できない値は 0 になる。
type Price float64

// ParsePrice は数値・文字列いずれの入力も Price に正規化する。
// 文字列は数字と小数点以外を取り除いてから解釈する。
// 解釈できない値と負値は 0 を返す。
func ParsePrice(v any) Price {
	switch x := v.(type) {
	case float64:
		return clampPrice(x)
	case int:
		return clampPrice(float64(x))
	case int64:
		return clampPrice(float64(x))
	case Price:
		return clampPrice(float64(x))
	case string:
		return parsePriceString(x)
	default:
		return 0
	}
}

func parsePriceString(s string) Price {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return clampPrice(f)
}

func clampPrice(f float64) Price {
	if f < 0 {
		return 0
	}
	return Price(f)
}

// UnmarshalJSON は数値と通貨文字列の両方を受け付ける。
func (p *Price) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*p = clampPrice(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = parsePriceString(s)
		return nil
	}

	// null やオブジェクトなどは 0 扱い（落とさない）
	*p = 0
	return nil
}

func (p Price) Float64() float64 {
	return float64(p)
}
