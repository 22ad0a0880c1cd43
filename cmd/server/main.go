package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"MarketLite/internal/shop"
	"MarketLite/pkg/kit"
)

func main() {
	_ = godotenv.Load()

	service := "shop"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "5000")

	s := &shop.Server{
		Store: shop.NewStore(),
		Log:   log,
	}

	reg := prometheus.NewRegistry()
	h := shop.NewHandler(s, shop.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: getenv("METRICS_ENABLED", "false") == "true",
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
		CORSOrigins:    splitCSV(os.Getenv("CORS_ORIGINS")),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
