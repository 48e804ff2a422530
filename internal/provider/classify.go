package provider

import (
	"context"
	"errors"
	"net"
)

// Transport failure messages shared by all adapters.
const (
	msgTimeout    = "Request timeout"
	msgConnection = "Connection error"
)

// TransportRecord classifies a transport-level error into an error record.
// Timeouts are checked before generic connection failures.
func TransportRecord(platform Platform, username string, err error) Record {
	if isTimeout(err) {
		return ErrorRecord(platform, username, msgTimeout)
	}
	return ErrorRecord(platform, username, msgConnection)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
