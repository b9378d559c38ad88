package helpers

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"flock_server/config"
	"flock_server/errors"
	"flock_server/schemas"
	"flock_server/socket"

	jsoniter "github.com/json-iterator/go"
)

var heartbeatClient = &http.Client{Timeout: 5 * time.Second}

// StartHeartbeat reports this shard to the coordinator on a fixed interval
// until ctx is cancelled. The interval must stay below the coordinator's
// staleness window. A failed beat is logged and retried on the next tick;
// a coordinator outage must never take the shard down with it.
func StartHeartbeat(ctx context.Context) {

	interval := time.Duration(config.Config.Coordinator.HeartbeatSeconds) * time.Second

	sendHeartbeat()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sendHeartbeat()
		}
	}
}

func sendHeartbeat() {

	body, err := jsoniter.Marshal(schemas.HeartbeatSchema{
		Hostname: config.Config.Shard.Hostname,
		Port:     config.Config.Shard.Port,
		Load:     socket.ConnectedCount(),
	})
	if errors.HandleBasicError(err) {
		return
	}

	resp, err := heartbeatClient.Post(
		"http://"+config.Config.Coordinator.Address()+"/heartbeat",
		"application/json",
		bytes.NewReader(body),
	)
	if errors.HandleBasicError(err) {
		return
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errors.HandleComplexError("heartbeat", "unexpected status "+resp.Status)
	}
}
