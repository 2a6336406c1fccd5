package adminapi

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mqtt-tools/mosqadm/internal/validate"
	"github.com/mqtt-tools/mosqadm/storage/model"
)

// userWithACL is the single-user response shape: the user plus its
// permission rules.
type userWithACL struct {
	model.User
	ACL []model.ACLRule `json:"acl"`
}

// registerUsers wires the user handlers using the store abstractions.
func registerUsers(r fiber.Router, users model.UsersStore, acl model.ACLStore) {
	g := r.Group("/users")

	g.Get("/", func(c *fiber.Ctx) error {
		list, err := users.List()
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"users": list})
	})

	g.Get("/:id", func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return badRequest(c, typeUserNotFound, "User with given ID not found")
		}
		u, err := users.GetByID(uint(id))
		if err != nil {
			return serverError(c, err)
		}
		if u == nil {
			return badRequest(c, typeUserNotFound, "User with given ID not found")
		}
		rules, err := acl.ListByUsername(u.Username)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"user": userWithACL{User: *u, ACL: rules}})
	})

	type createReq struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
		Role     *string `json:"role"`
	}
	g.Post("/", func(c *fiber.Ctx) error {
		var req createReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, typeAddUserValidationFailed, "Adding user failed on validation. Invalid request body")
		}
		msgs := validate.Chain{
			validate.Length("username", req.Username, 1, 50, "Username with 1 to 50 characters is required"),
			validate.Length("password", req.Password, 6, 0, "Password with at least 6 characters is required"),
			validate.OneOf("role", req.Role, []string{model.RoleUser, model.RoleAdmin}, "Role must be either user or admin"),
		}.Validate()
		if msgs != nil {
			return badRequest(
				c, typeAddUserValidationFailed,
				"Adding user failed on validation. "+strings.Join(msgs, ". "),
			)
		}

		existing, err := users.GetByUsername(*req.Username)
		if err != nil {
			return serverError(c, err)
		}
		if existing != nil {
			return badRequest(c, typeUserAlreadyExists, "User already exists.")
		}

		u, err := users.Create(*req.Username, *req.Password, *req.Role)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"user": u})
	})

	type editReq struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
		Role     *string `json:"role"`
	}
	g.Put("/", func(c *fiber.Ctx) error {
		var req editReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, typeEditUserValidationFailed, "Editing user failed on validation. Invalid request body")
		}
		msgs := validate.Chain{
			validate.Length("password", req.Password, 6, 0, "Password with at least 6 characters is required").Optional(),
			validate.OneOf("role", req.Role, []string{model.RoleUser, model.RoleAdmin}, "Role must be either user or admin").Optional(),
		}.Validate()
		if msgs != nil {
			return badRequest(
				c, typeEditUserValidationFailed,
				"Editing user failed on validation. "+strings.Join(msgs, ". "),
			)
		}

		if req.Username == nil {
			return badRequest(c, typeUserNotFound, "User not found.")
		}
		u, err := users.GetByUsername(*req.Username)
		if err != nil {
			return serverError(c, err)
		}
		if u == nil {
			return badRequest(c, typeUserNotFound, "User not found.")
		}

		if req.Role != nil {
			u.Role = *req.Role
		}
		if err := users.Update(u, req.Password); err != nil {
			return serverError(c, err)
		}
		return c.JSON(fiber.Map{"user": u})
	})

	type deleteReq struct {
		IDs []uint `json:"ids"`
	}
	g.Delete("/", func(c *fiber.Ctx) error {
		var req deleteReq
		if err := c.BodyParser(&req); err != nil || len(req.IDs) == 0 {
			return badRequest(c, typeUserDeleteIncorrectIDs, "Incorrect id input has been provided.")
		}
		affected, err := users.DeleteByIDs(req.IDs)
		if err != nil {
			return serverError(c, err)
		}
		if affected <= 0 {
			return badRequest(c, typeUserDeleteNotFound, "No user with given ID found")
		}
		return c.JSON(fiber.Map{"msg": "User(s) has been deleted"})
	})
}
