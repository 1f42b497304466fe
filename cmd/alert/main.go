// Command alert は記事本文を分析サービスに送信し、リスク評価を端末に表示します。
//
//	go run ./cmd/alert -text "RBI fined HDFC Bank ₹10 crore ..."
//	go run ./cmd/alert -file article.txt
//	cat article.txt | go run ./cmd/alert
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"news_risk_backend/internal/feature/alertview/adapters/backend"
	"news_risk_backend/internal/feature/alertview/render"
	infrahttp "news_risk_backend/internal/platform/http"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	cfg := backend.LoadConfig()

	text := flag.String("text", "", "article text to analyze")
	file := flag.String("file", "", "path to a file containing the article text")
	url := flag.String("backend", cfg.BaseURL, "base URL of the analysis service")
	noColor := flag.Bool("no-color", color.NoColor, "disable colored output")
	flag.Parse()

	article, err := readArticle(*text, *file, os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	r := render.NewRenderer(!*noColor)
	if strings.TrimSpace(article) == "" {
		r.RenderEmptyWarning(os.Stderr)
		os.Exit(2)
	}

	fmt.Fprintln(os.Stderr, "Analyzing article...")
	client := backend.NewClient(*url, infrahttp.NewHTTPClient(cfg.Timeout, infrahttp.WithUserAgent("news-risk-alert")))
	res, err := client.Analyze(context.Background(), article)
	if err != nil {
		r.RenderError(os.Stderr, err)
		os.Exit(1)
	}
	if err := r.Render(os.Stdout, res); err != nil {
		log.Fatal(err)
	}
}

// readArticle は -text、-file、標準入力の順に本文を取得します。
func readArticle(text, file string, stdin io.Reader) (string, error) {
	if text != "" {
		return text, nil
	}
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read article file: %w", err)
		}
		return string(b), nil
	}
	if f, ok := stdin.(*os.File); ok {
		if st, err := f.Stat(); err == nil && st.Mode()&os.ModeCharDevice != 0 {
			// 端末からの入力待ちにはしない
			return "", nil
		}
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}
