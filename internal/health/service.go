package health

import (
	"context"
	"runtime"
	"time"

	"github.com/redis/go-redis/v9"
)

var startedAt = time.Now()

// DBPinger is optional for the health check. If nil, database is reported as
// disconnected.
type DBPinger interface {
	Ping() error
}

// CollectResult is the /health/json payload.
type CollectResult struct {
	Status       string               `json:"status"`
	Runtime      RuntimeInfo          `json:"runtime"`
	Dependencies map[string]DepStatus `json:"dependencies"`
}

type RuntimeInfo struct {
	UptimeSeconds int64  `json:"uptimeSeconds"`
	GoVersion     string `json:"goVersion"`
	Platform      string `json:"platform"`
}

type DepStatus struct {
	Status string      `json:"status"`
	PingMs interface{} `json:"pingMs"`
}

// Collect pings the database and Redis and reports overall status:
// "ok" when every dependency is connected, "degraded" otherwise.
func Collect(ctx context.Context, db DBPinger, rdb *redis.Client) CollectResult {
	deps := map[string]DepStatus{
		"database": pingDB(db),
		"redis":    pingRedis(ctx, rdb),
	}

	status := "ok"
	for _, d := range deps {
		if d.Status != "connected" {
			status = "degraded"
		}
	}

	return CollectResult{
		Status: status,
		Runtime: RuntimeInfo{
			UptimeSeconds: int64(time.Since(startedAt).Seconds()),
			GoVersion:     runtime.Version(),
			Platform:      runtime.GOOS,
		},
		Dependencies: deps,
	}
}

func pingDB(db DBPinger) DepStatus {
	if db == nil {
		return DepStatus{Status: "disconnected", PingMs: nil}
	}
	start := time.Now()
	if err := db.Ping(); err != nil {
		return DepStatus{Status: "disconnected", PingMs: nil}
	}
	return DepStatus{Status: "connected", PingMs: time.Since(start).Milliseconds()}
}

func pingRedis(ctx context.Context, rdb *redis.Client) DepStatus {
	if rdb == nil {
		return DepStatus{Status: "disconnected", PingMs: nil}
	}
	start := time.Now()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return DepStatus{Status: "disconnected", PingMs: nil}
	}
	return DepStatus{Status: "connected", PingMs: time.Since(start).Milliseconds()}
}
