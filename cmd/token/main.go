// Command token は分析履歴APIに使用する Bearer トークンを発行します。
//
//	go run ./cmd/token -sub risk-desk -ttl 24h
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	jwtmw "news_risk_backend/internal/platform/jwt"
)

func main() {
	sub := flag.String("sub", "", "token subject (operator or client name)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	token, err := jwtmw.NewGenerator(secret, *ttl).GenerateToken(*sub)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
