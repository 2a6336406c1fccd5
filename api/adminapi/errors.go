package adminapi

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// Error types returned to admin clients. Clients match on these, so they are
// part of the wire protocol.
const (
	typeAddUserValidationFailed  = "ADD_USER_VALIDATION_FAILED"
	typeEditUserValidationFailed = "EDIT_USER_VALIDATION_FAILED"
	typeUserAlreadyExists        = "USER_ALREADY_EXISTS"
	typeUserNotFound             = "USER_NOT_FOUND"
	typeUserDeleteIncorrectIDs   = "USER_DELETE_INCORRECT_ID_INPUT"
	typeUserDeleteNotFound       = "DELETE_FAILED_USER_WITH_ID_NOT_FOUND"

	typeAddACLValidationFailed  = "ADD_ACL_VALIDATION_FAILED"
	typeEditACLValidationFailed = "EDIT_ACL_VALIDATION_FAILED"
	typeACLAlreadyExists        = "ACL_ALREADY_EXISTS"
	typeACLNotFound             = "ACL_NOT_FOUND"
	typeACLDeleteNoUsername     = "USERNAME_NOT_PROVIDED_WHEN_DELETING_ACL"
	typeACLDeleteIncorrectIDs   = "ACL_DELETE_INCORRECT_ID_INPUT"
	typeACLDeleteNotFound       = "DELETE_FAILED_ACL_WITH_ID_NOT_FOUND"
)

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

// badRequest sends a typed error payload with status 400.
func badRequest(c *fiber.Ctx, errType, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(
		errorResponse{
			Error: apiError{
				Type:    errType,
				Message: message,
			},
		},
	)
}

// serverError logs an unexpected fault and sends a generic 500 without a
// structured body. The error itself stays server-side.
func serverError(c *fiber.Ctx, err error) error {
	log.WithError(err).WithField("path", c.Path()).Error("unexpected error")
	return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
}
