package kitchen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"app/internal/client"
	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// 注文APIの最小フェイク。メニューと注文一覧、advance、deleteだけ返す。
type fakeAPI struct {
	mu       sync.Mutex
	menu     []model.MenuItem
	orders   []model.Order
	menuErr  bool // trueの間は/api/menuを落とす
	ordersOK int  // /api/ordersの成功回数
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/menu", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.menuErr {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(f.menu)
	})

	mux.HandleFunc("GET /api/orders", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.ordersOK++
		_ = json.NewEncoder(w).Encode(f.orders)
	})

	mux.HandleFunc("POST /api/orders/{id}/advance", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := r.PathValue("id")
		for i := range f.orders {
			if f.orders[i].ID == id {
				if next, ok := f.orders[i].Status.Next(); ok {
					f.orders[i].Status = next
				}
				_ = json.NewEncoder(w).Encode(map[string]any{
					"message": "Order status updated successfully",
					"status":  f.orders[i].Status,
				})
				return
			}
		}
		http.Error(w, `{"error":"Order not found"}`, http.StatusNotFound)
	})

	mux.HandleFunc("DELETE /api/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := r.PathValue("id")
		for i := range f.orders {
			if f.orders[i].ID == id {
				f.orders = append(f.orders[:i], f.orders[i+1:]...)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "Order deleted successfully"})
				return
			}
		}
		http.Error(w, `{"error":"Order not found"}`, http.StatusNotFound)
	})

	return mux
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		menu: []model.MenuItem{
			{ID: 1, Name: "Eggs Toast", Price: 250},
			{ID: 2, Name: "Black Coffee", Price: 100},
		},
		orders: []model.Order{
			{
				ID:           "o1",
				TableNumber:  "3",
				CustomerName: "Amina",
				Status:       model.OrderStatusSentToKitchen,
				Items: []model.OrderItem{
					{MenuItemID: 1, Quantity: 2, Price: 250},
					{MenuItemID: 99, Quantity: 1, Price: 50}, // カタログに無いid
				},
				Timestamp: time.Now(),
			},
			{
				ID:           "o2",
				TableNumber:  "5",
				CustomerName: "Brian",
				Status:       model.OrderStatusReady,
				Items: []model.OrderItem{
					{MenuItemID: 2, Quantity: 1, Price: 100},
				},
				Timestamp: time.Now(),
			},
		},
	}
}

func newTestService(t *testing.T, api *fakeAPI) *Service {
	t.Helper()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return NewService(client.New(srv.URL), zap.NewNop(), time.Second)
}

func TestService_Sync_GroupsByStatusInChainOrder(t *testing.T) {
	svc := newTestService(t, newFakeAPI())

	svc.Sync(context.Background())
	view := svc.View()

	require.Len(t, view.Groups, 2)
	assert.Equal(t, model.OrderStatusSentToKitchen, view.Groups[0].Status)
	assert.Equal(t, "New Order", view.Groups[0].Label)
	assert.Equal(t, model.OrderStatusReady, view.Groups[1].Status)

	ticket := view.Groups[0].Tickets[0]
	assert.Equal(t, "o1", ticket.OrderID)
	assert.Equal(t, model.Price(2*250+50), ticket.Total)
	require.Len(t, ticket.Lines, 2)
	assert.Equal(t, "Eggs Toast", ticket.Lines[0].Name)
	assert.Equal(t, model.Price(500), ticket.Lines[0].Subtotal)
}

func TestService_ItemName_UnknownIDGetsPlaceholder(t *testing.T) {
	svc := newTestService(t, newFakeAPI())
	svc.Sync(context.Background())

	assert.Equal(t, "Eggs Toast", svc.ItemName(1))
	assert.Equal(t, "Item 99", svc.ItemName(99))
}

func TestService_Sync_MenuFetchRetriesUntilSuccess(t *testing.T) {
	api := newFakeAPI()
	api.menuErr = true
	svc := newTestService(t, api)

	// メニューが取れなくても注文一覧は表示できる（名前は代替名）
	svc.Sync(context.Background())
	view := svc.View()
	require.NotEmpty(t, view.Groups)
	assert.Equal(t, "Item 1", view.Groups[0].Tickets[0].Lines[0].Name)

	// 次のサイクルで回復したらキャッシュされ、名前が解決される
	api.mu.Lock()
	api.menuErr = false
	api.mu.Unlock()

	svc.Sync(context.Background())
	view = svc.View()
	assert.Equal(t, "Eggs Toast", view.Groups[0].Tickets[0].Lines[0].Name)
}

func TestService_AdvanceOrder_ReflectsServerStatus(t *testing.T) {
	svc := newTestService(t, newFakeAPI())
	svc.Sync(context.Background())

	st, err := svc.AdvanceOrder(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusInProgress, st)

	// 次の同期でストア側の真実に追従する
	svc.Sync(context.Background())
	view := svc.View()
	for _, g := range view.Groups {
		for _, tk := range g.Tickets {
			if tk.OrderID == "o1" {
				assert.Equal(t, model.OrderStatusInProgress, tk.Status)
			}
		}
	}
}

func TestService_RemoveOrder_IdempotentOnNotFound(t *testing.T) {
	svc := newTestService(t, newFakeAPI())

	require.NoError(t, svc.RemoveOrder(context.Background(), "o2"))
	// 既に消えていても成功扱い
	require.NoError(t, svc.RemoveOrder(context.Background(), "o2"))
	require.NoError(t, svc.RemoveOrder(context.Background(), "never-existed"))
}

func TestService_Sync_KeepsViewOnFetchFailure(t *testing.T) {
	api := newFakeAPI()
	srv := httptest.NewServer(api.handler())
	svc := NewService(client.New(srv.URL), zap.NewNop(), time.Second)

	svc.Sync(context.Background())
	require.NotEmpty(t, svc.View().Groups)

	// APIが落ちても前回のビューを保つ
	srv.Close()
	svc.Sync(context.Background())
	assert.NotEmpty(t, svc.View().Groups)
}

func TestService_Run_StopsOnCancel(t *testing.T) {
	svc := newTestService(t, newFakeAPI())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = svc.Run(ctx)
		close(done)
	}()

	// 最初の同期が終わるまで待つ
	require.Eventually(t, func() bool {
		return len(svc.View().Groups) > 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestView_Render(t *testing.T) {
	svc := newTestService(t, newFakeAPI())
	svc.Sync(context.Background())

	out := svc.View().Render()
	assert.True(t, strings.Contains(out, "New Order"))
	assert.True(t, strings.Contains(out, "2x Eggs Toast"))
	assert.True(t, strings.Contains(out, "Table 3"))
}
