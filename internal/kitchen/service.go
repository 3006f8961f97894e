package kitchen

import (
	"context"
	"fmt"
	"sync"
	"time"

	"app/internal/client"
	"app/internal/domain/model"

	"go.uber.org/zap"
)

// 表示順は調理の流れと同じ
var displayOrder = []model.OrderStatus{
	model.OrderStatusSentToKitchen,
	model.OrderStatusInProgress,
	model.OrderStatusReady,
	model.OrderStatusServed,
}

// StatusLabel はキッチン表示向けのラベル。
func StatusLabel(s model.OrderStatus) string {
	switch s {
	case model.OrderStatusSentToKitchen:
		return "New Order"
	case model.OrderStatusInProgress:
		return "In Progress"
	case model.OrderStatusReady:
		return "Ready"
	case model.OrderStatusServed:
		return "Served"
	default:
		return string(s)
	}
}

// Service はキッチン表示の同期役。
// プッシュ通知は無い前提で、固定間隔の全件ポーリングだけで追従する。
// カタログは一度取れたらキャッシュし、注文は毎サイクル取り直す。
type Service struct {
	api      *client.Client
	logger   *zap.Logger
	interval time.Duration

	mu   sync.Mutex
	menu map[int64]model.MenuItem // 取得成功まではnil
	view View
}

func NewService(api *client.Client, logger *zap.Logger, interval time.Duration) *Service {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Service{
		api:      api,
		logger:   logger,
		interval: interval,
	}
}

// Run は即時に1回同期した後、固定間隔で同期を繰り返す。
// 単一ゴルーチンで順番に回すため、サイクルが重なることはない。
// ctxのキャンセルで停止する。
func (s *Service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.Sync(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Sync は1回のポーリングサイクル。
// 取得に失敗したら前回の表示を保ったまま次のサイクルで自然に再試行する。
func (s *Service) Sync(ctx context.Context) {
	if !s.menuLoaded() {
		items, err := s.api.Menu(ctx)
		if err != nil {
			s.logger.Warn("menu fetch failed, will retry", zap.Error(err))
		} else {
			byID := make(map[int64]model.MenuItem, len(items))
			for _, it := range items {
				byID[it.ID] = it
			}
			s.mu.Lock()
			s.menu = byID
			s.mu.Unlock()
			s.logger.Info("menu cached", zap.Int("items", len(items)))
		}
	}

	orders, err := s.api.Orders(ctx)
	if err != nil {
		s.logger.Warn("orders fetch failed, keeping previous view", zap.Error(err))
		return
	}

	view := s.buildView(orders)

	s.mu.Lock()
	s.view = view
	s.mu.Unlock()
}

func (s *Service) menuLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menu != nil
}

// ItemName はカタログからメニュー名を引く。
// 見つからないidでも失敗させず、idを埋め込んだ代替名を返す。
func (s *Service) ItemName(menuItemID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if it, ok := s.menu[menuItemID]; ok {
		return it.Name
	}
	return fmt.Sprintf("Item %d", menuItemID)
}

// AdvanceOrder はストア側のステータスを1段進める。
// 進めた結果をローカル表示へ反映し、次のポーリングで正式に同期する。
func (s *Service) AdvanceOrder(ctx context.Context, orderID string) (model.OrderStatus, error) {
	status, err := s.api.AdvanceOrder(ctx, orderID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	for gi := range s.view.Groups {
		for ti := range s.view.Groups[gi].Tickets {
			if s.view.Groups[gi].Tickets[ti].OrderID == orderID {
				s.view.Groups[gi].Tickets[ti].Status = status
			}
		}
	}
	s.mu.Unlock()

	return status, nil
}

// RemoveOrder は注文をストアから取り除く（提供完了の合図）。
// 既に消えていた場合（404）は処理済みとみなして成功扱いにする。
func (s *Service) RemoveOrder(ctx context.Context, orderID string) error {
	err := s.api.DeleteOrder(ctx, orderID)
	if err != nil && !client.IsNotFound(err) {
		return err
	}
	return nil
}

// View は直近の同期結果を返す（コピー）。
func (s *Service) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.clone()
}
