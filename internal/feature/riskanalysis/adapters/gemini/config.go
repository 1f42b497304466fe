package gemini

import (
	"os"
	"strconv"
)

// Config はGemini APIクライアントの設定を保持します。
type Config struct {
	APIKey string // Gemini APIキー（空の場合はADC/Vertex AIの環境変数を使用）
	Model  string // 使用するモデル名
	RPM    int    // 1分あたりの最大リクエスト数（0以下は無制限）
}

// LoadConfig は環境変数からGeminiの設定を読み込みます。
func LoadConfig() Config {
	cfg := Config{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  os.Getenv("GEMINI_MODEL"),
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if rpm, err := strconv.Atoi(os.Getenv("GEMINI_RPM")); err == nil {
		cfg.RPM = rpm
	}
	return cfg
}
