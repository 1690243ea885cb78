package middleware

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// LoggerConfig holds configuration for the request logger middleware.
type LoggerConfig struct {
	Format string // "json" or "pretty"
}

// LogEntry is one logged request.
type LogEntry struct {
	Timestamp  string `json:"timestamp"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	StatusCode int    `json:"status_code"`
	Latency    string `json:"latency"`
	ClientIP   string `json:"client_ip"`
	Error      string `json:"error,omitempty"`
}

// RequestLogger logs every request with its status and latency, in JSON or
// pretty format depending on the configuration.
func RequestLogger(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		entry := LogEntry{
			Timestamp:  time.Now().Format(time.RFC3339),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Latency:    time.Since(startTime).String(),
			ClientIP:   c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.String()
		}

		if config.Format == "json" {
			printJSONLog(entry)
		} else {
			printPrettyLog(entry)
		}
	}
}

func printJSONLog(entry LogEntry) {
	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Printf("failed to marshal log entry: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printPrettyLog(entry LogEntry) {
	fmt.Printf("[%s] %s %s %d %s %s", entry.Timestamp, entry.Method, entry.Path,
		entry.StatusCode, entry.Latency, entry.ClientIP)
	if entry.Error != "" {
		fmt.Printf(" error=%q", entry.Error)
	}
	fmt.Println()
}
