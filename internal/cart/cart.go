package cart

import (
	"app/internal/domain/model"
)

// Line はカート内の1行。同じメニューidの行は常に1本だけで、
// Quantity は1以上に保たれる（0になる行はカートから消える）。
type Line struct {
	Item     model.MenuItem
	Quantity int64
}

func (l Line) Subtotal() model.Price {
	return model.Price(l.Item.Price.Float64() * float64(l.Quantity))
}

// Cart は送信前のクライアントローカルな選択状態。
// 追加順を保って表示するためスライスで持つ。
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add は同じidが既にあれば数量を+1、無ければ数量1の行を足す。
func (c *Cart) Add(item model.MenuItem) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
}

// Remove は数量を-1し、0になったら行ごと取り除く。
// 該当idが無ければ何もしない。
func (c *Cart) Remove(itemID int64) {
	for i := range c.lines {
		if c.lines[i].Item.ID != itemID {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
		} else {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// Total は正規化済み価格×数量の合計。
func (c *Cart) Total() model.Price {
	var total float64
	for _, l := range c.lines {
		total += l.Item.Price.Float64() * float64(l.Quantity)
	}
	return model.Price(total)
}

// Lines は追加順の行を返す（コピー）。
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Clear() {
	c.lines = nil
}
