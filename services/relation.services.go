package services

import (
	"flock_server/errors"
	"flock_server/global"
	"flock_server/graph"
	"flock_server/helpers"
	"flock_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// Follow adds the requester to the target's followers
func Follow(c *fiber.Ctx) error {

	req := new(schemas.RelationSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	switch err := global.Graph.Follow(req.Username, req.Target); err {
	case nil:
		return helpers.StatusOK(c, schemas.StatusFollowed)
	case graph.ErrSelfFollow:
		return helpers.StatusReject(c, schemas.StatusSelfFollow)
	case graph.ErrUnknownUser:
		return helpers.StatusReject(c, schemas.StatusUnknownUser)
	case graph.ErrAlreadyFollowing:
		return helpers.StatusReject(c, schemas.StatusAlreadyFollowing)
	default:
		return errors.HandleInternalError(c, "Follow", err.Error())
	}
}

// UnFollow removes the requester from the target's followers
func UnFollow(c *fiber.Ctx) error {

	req := new(schemas.RelationSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	switch err := global.Graph.Unfollow(req.Username, req.Target); err {
	case nil:
		return helpers.StatusOK(c, schemas.StatusUnfollowed)
	case graph.ErrUnknownUser:
		return helpers.StatusReject(c, schemas.StatusUnknownUser)
	case graph.ErrNotFollowing:
		return helpers.StatusReject(c, schemas.StatusNotFollowing)
	default:
		return errors.HandleInternalError(c, "UnFollow", err.Error())
	}
}
