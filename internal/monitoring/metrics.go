package monitoring

import (
	"database/sql"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Service holds runtime context for monitoring and reporting. The pool is
// injected; the snapshot queries are best-effort and never fail a request.
type Service struct {
	db        *sql.DB
	startedAt time.Time
}

type Snapshot struct {
	TimestampUTC       string `json:"timestamp_utc"`
	UptimeSeconds      int64  `json:"uptime_seconds"`
	HTTPActiveRequests int64  `json:"http_active_requests"`
	HTTPTotalRequests  uint64 `json:"http_total_requests"`
	HTTP2xxTotal       uint64 `json:"http_2xx_total"`
	HTTP4xxTotal       uint64 `json:"http_4xx_total"`
	HTTP5xxTotal       uint64 `json:"http_5xx_total"`
	DBOpenConnections  int    `json:"db_open_connections"`
	DBInUseConnections int    `json:"db_in_use_connections"`
	DBWaitCount        int64  `json:"db_wait_count"`
	Goroutines         int    `json:"goroutines"`
	GoMemoryAllocBytes uint64 `json:"go_memory_alloc_bytes"`
	GoHeapInUseBytes   uint64 `json:"go_heap_in_use_bytes"`
	GoGCCount          uint32 `json:"go_gc_count"`
	UsersTotal         int64  `json:"users_total"`
	ProductsTotal      int64  `json:"products_total"`
	ReviewsTotal       int64  `json:"reviews_total"`
	TrendsTotal        int64  `json:"trends_total"`
	DBSizeBytes        int64  `json:"db_size_bytes"`
}

func NewService(db *sql.DB, startedAt time.Time) *Service {
	return &Service{db: db, startedAt: startedAt}
}

func (s *Service) StatusText() string {
	dbState := "ok"
	if err := s.db.Ping(); err != nil {
		dbState = "error: " + err.Error()
	}

	uptime := time.Since(s.startedAt).Round(time.Second)
	activeHTTP, totalHTTP := getHTTPStats()
	stats := s.db.Stats()

	return strings.Join([]string{
		"ProductPulse Server Status",
		fmt.Sprintf("Uptime: %s", uptime),
		fmt.Sprintf("DB: %s", dbState),
		fmt.Sprintf("HTTP active requests: %d", activeHTTP),
		fmt.Sprintf("HTTP total requests: %d", totalHTTP),
		fmt.Sprintf("DB open connections: %d", stats.OpenConnections),
		fmt.Sprintf("Go goroutines: %d", runtime.NumGoroutine()),
	}, "\n")
}

func (s *Service) Snapshot() Snapshot {
	stats := s.db.Stats()
	activeHTTP, totalHTTP := getHTTPStats()
	ok2xx, client4xx, server5xx := getStatusClassCounts()

	var memory runtime.MemStats
	runtime.ReadMemStats(&memory)

	snap := Snapshot{
		TimestampUTC:       time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds:      int64(time.Since(s.startedAt).Seconds()),
		HTTPActiveRequests: activeHTTP,
		HTTPTotalRequests:  totalHTTP,
		HTTP2xxTotal:       ok2xx,
		HTTP4xxTotal:       client4xx,
		HTTP5xxTotal:       server5xx,
		DBOpenConnections:  stats.OpenConnections,
		DBInUseConnections: stats.InUse,
		DBWaitCount:        stats.WaitCount,
		Goroutines:         runtime.NumGoroutine(),
		GoMemoryAllocBytes: memory.Alloc,
		GoHeapInUseBytes:   memory.HeapInuse,
		GoGCCount:          memory.NumGC,
	}

	_ = s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&snap.UsersTotal)
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&snap.ProductsTotal)
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM reviews`).Scan(&snap.ReviewsTotal)
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM trends`).Scan(&snap.TrendsTotal)
	_ = s.db.QueryRow(`SELECT COALESCE(pg_database_size(current_database()), 0)`).Scan(&snap.DBSizeBytes)

	return snap
}
