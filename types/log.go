package types

import "time"

// LogEntry is an HTTP request/response record queued for async persistence
type LogEntry struct {
	Method          string    `json:"method"`
	URL             string    `json:"url"`
	ClientIP        string    `json:"client_ip"`
	RequestBody     string    `json:"request_body"`
	ResponseBody    string    `json:"response_body"`
	RequestHeaders  string    `json:"request_headers"`
	ResponseHeaders string    `json:"response_headers"`
	StatusCode      int       `json:"status_code"`
	CreatedAt       time.Time `json:"created_at"`
}
