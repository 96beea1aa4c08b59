package metrics

import (
	"strconv"
	"strings"
)

// RecordExternalAPICall records external API call metrics (GitHub, SMTP)
func (m *Metrics) RecordExternalAPICall(target, method string, statusCode int, err error) {
	m.safeExecute("RecordExternalAPICall", func() {
		m.ExternalAPIRequestsTotal.WithLabelValues(target, method, strconv.Itoa(statusCode)).Inc()

		if err != nil || statusCode >= 400 {
			m.ExternalAPIErrors.WithLabelValues(target, errorType(statusCode, err)).Inc()
		}
	})
}

func errorType(statusCode int, err error) string {
	switch {
	case statusCode == 401:
		return "unauthorized"
	case statusCode == 403:
		return "forbidden"
	case statusCode == 404:
		return "not_found"
	case statusCode == 429:
		return "too_many_requests"
	case statusCode >= 400 && statusCode < 500:
		return "client_error"
	case statusCode >= 500:
		return "server_error"
	}

	if err != nil {
		msg := err.Error()
		switch {
		case strings.Contains(msg, "connection refused"):
			return "connection_refused"
		case strings.Contains(msg, "no such host"):
			return "dns_error"
		case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
			return "timeout"
		}
		return "network_error"
	}

	return "unknown"
}
