package adminapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mqtt-tools/mosqadm/internal/validate"
	"github.com/mqtt-tools/mosqadm/storage/model"
)

// registerACL wires the ACL rule handlers using the store abstractions.
func registerACL(r fiber.Router, users model.UsersStore, acl model.ACLStore) {
	g := r.Group("/acl")

	g.Get("/", func(c *fiber.Ctx) error {
		rules, err := acl.List()
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"acl": rules})
	})

	type createReq struct {
		Username *string `json:"username"`
		Topic    *string `json:"topic"`
		RW       *int    `json:"rw"`
	}
	g.Post("/", func(c *fiber.Ctx) error {
		var req createReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, typeAddACLValidationFailed, "Adding ACL rule failed on validation. Invalid request body")
		}
		msgs := validate.Chain{
			validate.Length("username", req.Username, 1, 50, "Username with 1 to 50 characters is required"),
			validate.Length("topic", req.Topic, 1, 100, "Topic with 1 to 100 characters is required"),
			validate.IntRange("rw", req.RW, 1, 4, "RW must be an integer between 1 and 4"),
		}.Validate()
		if msgs != nil {
			return badRequest(
				c, typeAddACLValidationFailed,
				"Adding ACL rule failed on validation. "+strings.Join(msgs, ". "),
			)
		}

		user, err := users.GetByUsername(*req.Username)
		if err != nil {
			return serverError(c, err)
		}
		if user == nil {
			return badRequest(c, typeUserNotFound, "User with given username not found")
		}

		existing, err := acl.GetByUsernameAndTopic(*req.Username, *req.Topic)
		if err != nil {
			return serverError(c, err)
		}
		if existing != nil {
			return badRequest(c, typeACLAlreadyExists, "ACL with provided topic already exists")
		}

		rule := model.ACLRule{Username: *req.Username, Topic: *req.Topic, RW: *req.RW}
		if err := acl.Create(&rule); err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"acl": rule})
	})

	type editReq struct {
		ID    *uint   `json:"id"`
		Topic *string `json:"topic"`
		RW    *int    `json:"rw"`
	}
	g.Put("/", func(c *fiber.Ctx) error {
		var req editReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, typeEditACLValidationFailed, "Editing ACL rule failed on validation. Invalid request body")
		}
		msgs := validate.Chain{
			validate.Required("id", req.ID != nil, "ACL ID is required"),
			validate.Length("topic", req.Topic, 1, 100, "Topic with 1 to 100 characters is required").Optional(),
			validate.IntRange("rw", req.RW, 1, 4, "RW must be an integer between 1 and 4").Optional(),
		}.Validate()
		if msgs != nil {
			return badRequest(
				c, typeEditACLValidationFailed,
				"Editing ACL rule failed on validation. "+strings.Join(msgs, ". "),
			)
		}

		rule, err := acl.GetByID(*req.ID)
		if err != nil {
			return serverError(c, err)
		}
		if rule == nil {
			return badRequest(c, typeACLNotFound, "ACL to edit not found.")
		}

		if req.Topic != nil {
			rule.Topic = *req.Topic
		}
		if req.RW != nil {
			rule.RW = *req.RW
		}
		if err := acl.Update(rule); err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"acl": rule})
	})

	type deleteReq struct {
		Username *string `json:"username"`
		IDs      []uint  `json:"ids"`
	}
	g.Delete("/", func(c *fiber.Ctx) error {
		var req deleteReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, typeACLDeleteNoUsername, "Username not provided.")
		}
		if req.Username == nil || *req.Username == "" {
			return badRequest(c, typeACLDeleteNoUsername, "Username not provided.")
		}
		if len(req.IDs) == 0 {
			return badRequest(c, typeACLDeleteIncorrectIDs, "Incorrect id input has been provided.")
		}

		user, err := users.GetByUsername(*req.Username)
		if err != nil {
			return serverError(c, err)
		}
		if user == nil {
			return badRequest(c, typeUserNotFound, "User with given username not found")
		}

		affected, err := acl.DeleteByIDs(*req.Username, req.IDs)
		if err != nil {
			return serverError(c, err)
		}
		if affected <= 0 {
			return badRequest(c, typeACLDeleteNotFound, "No acl with given ID found")
		}
		return c.JSON(fiber.Map{"msg": "ACL(s) has been deleted"})
	})
}
