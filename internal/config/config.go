package config

import (
	"fmt"
	"os"
	"time"
)

// 既定のデプロイ先URL（環境変数で上書きできる）
const DefaultAPIBaseURL = "https://point-of-sale-software-for-belmont-hotel-cvko.onrender.com"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（4000）

	MenuRoot  string // メニュー画像のルートディレクトリ
	MenuJSON  string // 手動オーバーライドのJSONファイル
	StaticDir string // /images で配信する静的ファイルのルート

	APIBaseURL          string        // クライアント側が叩くAPIのベースURL
	KitchenPollInterval time.Duration // キッチン表示のポーリング間隔
}

// Loadは環境変数から設定を読む。未設定の項目は既定値にフォールバックする。
func Load() (Config, error) {
	interval, err := durationEnv("KITCHEN_POLL_INTERVAL", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "4000"),

		MenuRoot:  getenv("MENU_ROOT", "public/Menu"),
		MenuJSON:  getenv("MENU_JSON", "menu.json"),
		StaticDir: getenv("STATIC_DIR", "public"),

		APIBaseURL:          getenv("API_BASE_URL", DefaultAPIBaseURL),
		KitchenPollInterval: interval,
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
