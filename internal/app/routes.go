package app

import (
	"github.com/ferdiebergado/usersvc/internal/middleware"
	"github.com/ferdiebergado/usersvc/internal/platform/router"
	"github.com/ferdiebergado/usersvc/internal/user"
)

func mountUserRoutes(r router.Router, handler *user.Handler, maxBodySize int64) {
	const itemPath = "/users/{" + user.PathID + "}"

	r.Get("/users", handler.List)
	r.Post("/users", handler.Create,
		middleware.CheckContentType,
		middleware.DecodePayload[user.CreateUserRequest](maxBodySize))
	r.Get(itemPath, handler.Find)
	r.Put(itemPath, handler.Update,
		middleware.CheckContentType,
		middleware.DecodePayload[user.UpdateUserRequest](maxBodySize))
	r.Patch(itemPath, handler.Update,
		middleware.CheckContentType,
		middleware.DecodePayload[user.UpdateUserRequest](maxBodySize))
	r.Delete(itemPath, handler.Delete)
}
