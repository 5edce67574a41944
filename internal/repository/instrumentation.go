package repository

import (
	"time"

	"github.com/SaiSriramKurapati/chatBot-backend/internal/pkg/metrics"
)

// instrumentQuery wraps a database query with timing metrics
func instrumentQuery(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	duration := time.Since(start).Seconds()

	metrics.DBQueryDurationSeconds.WithLabelValues(operation).Observe(duration)
	return err
}
