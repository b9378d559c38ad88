package services

import (
	"flock_server/errors"
	"flock_server/global"
	"flock_server/helpers"
	"flock_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// Login registers the user on this shard, or reconnects a returning one.
// Never fails for a well-formed username; a repeated login while connected
// is answered with an informational status.
func Login(c *fiber.Ctx) error {

	req := new(schemas.LoginSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	if global.Graph.Login(req.Username) {
		return helpers.StatusOK(c, schemas.StatusAlreadyJoined)
	}

	return helpers.StatusOK(c, schemas.StatusWelcome)
}

// List returns every registered username on this shard plus the
// requester's followers
func List(c *fiber.Ctx) error {

	username := c.Params("username")
	if username == "" {
		return errors.HandleBadRequestError(c, "Username", "missing")
	}

	followers, err := global.Graph.ListFollowers(username)
	if err != nil {
		// rejected rather than answered empty to surface client bugs early
		return errors.HandleInvalidRequestError(c, "List", schemas.StatusUnknownUser)
	}

	return c.JSON(schemas.ListResponseSchema{
		AllUsers:  global.Graph.ListAll(),
		Followers: followers,
	})
}
