package coordinator

import (
	"time"

	"flock_server/errors"
	"flock_server/global"
	"flock_server/helpers"
	"flock_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// Records is the liveness tracker owned by the coordinator process
var Records *Tracker

// InitializeTracker sets up the liveness tracker with the staleness window
func InitializeTracker(window time.Duration) {
	Records = NewTracker(window)
}

// Heartbeat upserts the calling shard's record; it always acknowledges
func Heartbeat(c *fiber.Ctx) error {

	req := new(schemas.HeartbeatSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	Records.Touch(req.Hostname, req.Port, req.Load, time.Now())

	return helpers.OKResponse(c)
}

// GetServer assigns the calling client to one live shard
func GetServer(c *fiber.Ctx) error {

	clientID := c.Params("clientID")
	if clientID == "" {
		return errors.HandleBadRequestError(c, "ClientID", "missing")
	}

	record, err := Assign(clientID, Records.Alive(time.Now()))
	if err != nil {
		return errors.HandleUnavailableError(c, "GetServer", schemas.StatusNoShard)
	}

	return c.JSON(schemas.ServerInfoSchema{
		Hostname: record.Hostname,
		Port:     record.Port,
	})
}
