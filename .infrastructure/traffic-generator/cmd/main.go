package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_requests_total",
		Help: "Запросы к Cookies Hub по маршруту и статусу",
	}, []string{"path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_request_duration_seconds",
		Help:    "Длительность запроса к Cookies Hub в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"path"})
)

// paths отчёты и списки, которые панель опрашивает при каждом открытии.
var paths = []string{
	"/api/pedidos",
	"/api/produtos",
	"/api/custos",
	"/api/dashboard",
	"/api/vendas",
	"/api/lucros",
	"/api/tendencias",
	"/api/produtos-vendidos",
	"/health",
}

func hit(client *http.Client, target, path string) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}()

	resp, err := client.Get(target + path)
	if err != nil {
		requestsTotal.WithLabelValues(path, "error").Inc()
		return
	}
	_ = resp.Body.Close()
	requestsTotal.WithLabelValues(path, strconv.Itoa(resp.StatusCode)).Inc()
}

func main() {
	target := flag.String("target", "http://localhost:3000", "Cookies Hub base URL")
	pause := flag.Duration("pause", time.Second, "pause between requests")
	flag.Parse()

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":2112", nil); err != nil { //nolint:gosec // локальный генератор
			log.Fatal(err)
		}
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	for {
		hit(client, *target, paths[rand.IntN(len(paths))])
		time.Sleep(*pause)
	}
}
