package kitchen

import (
	"fmt"
	"strings"
	"time"

	"app/internal/domain/model"
)

// TicketLine は明細1行の表示用データ。名前はカタログ解決済み。
type TicketLine struct {
	Name     string
	Quantity int64
	Price    model.Price
	Subtotal model.Price
}

// Ticket は注文1件の表示用データ。
type Ticket struct {
	OrderID      string
	TableNumber  string
	CustomerName string
	Status       model.OrderStatus
	Lines        []TicketLine
	Total        model.Price
	Timestamp    time.Time
}

// Group は同一ステータスの注文の束。
type Group struct {
	Status  model.OrderStatus
	Label   string
	Tickets []Ticket
}

// View は1回の同期で得た表示内容全体。
type View struct {
	Groups    []Group
	FetchedAt time.Time
}

func (v View) clone() View {
	out := View{FetchedAt: v.FetchedAt}
	out.Groups = make([]Group, len(v.Groups))
	for i, g := range v.Groups {
		tickets := make([]Ticket, len(g.Tickets))
		copy(tickets, g.Tickets)
		out.Groups[i] = Group{Status: g.Status, Label: g.Label, Tickets: tickets}
	}
	return out
}

// buildView は全注文をステータス別に束ね、明細の名前と金額を解決する。
func (s *Service) buildView(orders []model.Order) View {
	byStatus := make(map[model.OrderStatus][]Ticket)
	for _, o := range orders {
		byStatus[o.Status] = append(byStatus[o.Status], s.buildTicket(o))
	}

	view := View{FetchedAt: time.Now()}
	for _, st := range displayOrder {
		tickets := byStatus[st]
		if len(tickets) == 0 {
			continue
		}
		view.Groups = append(view.Groups, Group{
			Status:  st,
			Label:   StatusLabel(st),
			Tickets: tickets,
		})
	}
	return view
}

func (s *Service) buildTicket(o model.Order) Ticket {
	lines := make([]TicketLine, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, TicketLine{
			Name:     s.ItemName(it.MenuItemID),
			Quantity: it.Quantity,
			Price:    it.Price,
			Subtotal: model.Price(it.Price.Float64() * float64(it.Quantity)),
		})
	}
	return Ticket{
		OrderID:      o.ID,
		TableNumber:  o.TableNumber,
		CustomerName: o.CustomerName,
		Status:       o.Status,
		Lines:        lines,
		Total:        o.Total(),
		Timestamp:    o.Timestamp,
	}
}

// Render はターミナル表示用のテキストを組み立てる。
func (v View) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Kitchen Display (%s) ===\n", v.FetchedAt.Format("15:04:05"))
	if len(v.Groups) == 0 {
		b.WriteString("no active orders\n")
		return b.String()
	}

	for _, g := range v.Groups {
		fmt.Fprintf(&b, "\n[%s] %d order(s)\n", g.Label, len(g.Tickets))
		for _, t := range g.Tickets {
			fmt.Fprintf(&b, "  #%s  Table %s  %s\n", t.OrderID, t.TableNumber, t.CustomerName)
			for _, l := range t.Lines {
				fmt.Fprintf(&b, "    %dx %s  KSH %.0f\n", l.Quantity, l.Name, l.Subtotal.Float64())
			}
			fmt.Fprintf(&b, "    total KSH %.0f\n", t.Total.Float64())
		}
	}
	return b.String()
}
