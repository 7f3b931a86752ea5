package middleware

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthStatus struct {
	Status      string    `json:"status"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
}

var (
	healthStatus = HealthStatus{
		Status:  "ok",
		Uptime:  "0s",
		Version: "1.0.0",
	}
	healthMutex      sync.RWMutex
	startTime        = time.Now()
	lastResponse     []byte
	lastResponseTime time.Time
	cacheDuration    = 5 * time.Second
)

// HealthCheckMiddleware serves the health endpoint with a short response
// cache. The cached path takes only a read lock; refreshing the response
// requires the write lock since it mutates the shared status.
func HealthCheckMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		healthMutex.RLock()
		if time.Since(lastResponseTime) < cacheDuration && lastResponse != nil {
			response := lastResponse
			healthMutex.RUnlock()
			c.Data(http.StatusOK, "application/json", response)
			return
		}
		healthMutex.RUnlock()

		healthMutex.Lock()
		healthStatus.Uptime = time.Since(startTime).String()
		healthStatus.LastChecked = time.Now()

		response, _ := json.Marshal(healthStatus)
		lastResponse = response
		lastResponseTime = time.Now()
		healthMutex.Unlock()

		c.Data(http.StatusOK, "application/json", response)
	}
}
