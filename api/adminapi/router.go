// Package adminapi implements the HTTP administration API over the broker
// auth database. All state is accessed through the store interfaces in
// storage/model; handlers hold no state of their own.
package adminapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mqtt-tools/mosqadm/storage/model"
)

// Register mounts all admin API routes under the provided group.
func Register(r fiber.Router, storages model.Backends) {
	registerUsers(r, storages.Users, storages.ACL)
	registerACL(r, storages.Users, storages.ACL)
}
