package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus represents the health status
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthCheck represents the health check response for Redis
type HealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthCheck pings the server and reports its address and round trip.
func (c *Client) HealthCheck(ctx context.Context) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := c.Ping(ctx)

	details := map[string]string{
		"host":     c.config.Host,
		"port":     strconv.Itoa(c.config.Port),
		"database": strconv.Itoa(c.config.Database),
		"latency":  time.Since(start).String(),
	}

	if err != nil {
		details["error"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}
	return HealthCheck{Status: StatusUp, Details: details}
}
