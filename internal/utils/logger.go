package utils

import (
	"log"
	"strings"
)

// LogEvent writes one billing log line: [MODULE] action=... request_id=... msg=...
// Line breaks in msg are flattened so upstream error bodies stay on one line.
// Callers pass ids and totals only, never guest details.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	msg := strings.NewReplacer("\r", " ", "\n", " ").Replace(message)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, msg)
}
