package api

import (
	"github.com/openblogger/blog-backend/auth"
	"github.com/openblogger/blog-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, authService *auth.Service) *routeHandlers {
	return &routeHandlers{
		userHandler: newUserHandler(database.UserRepo(), authService),
		postHandler: newPostHandler(database.PostRepo(), database.TagRepo()),
		tagHandler:  newTagHandler(database.TagRepo()),
	}
}
