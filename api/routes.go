package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint. Reads are public; mutations of posts
// and tags require a bearer token.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Post("/signup", handlers.userHandler.signup())
		r.Post("/login", handlers.userHandler.login())

		r.Get("/posts", handlers.postHandler.getAllPosts())
		r.Get("/posts/{postID}", handlers.postHandler.getPost())

		r.Get("/tags", handlers.tagHandler.getAllTags())
		r.Get("/tags/{tagID}", handlers.tagHandler.getTag())
		r.Get("/tags/{tagID}/posts", handlers.tagHandler.getTagPosts())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Post("/posts", handlers.postHandler.createPost())
		r.Put("/posts/{postID}", handlers.postHandler.updatePost())
		r.Delete("/posts/{postID}", handlers.postHandler.deletePost())

		r.Post("/tags", handlers.tagHandler.createTag())
		r.Put("/tags/{tagID}", handlers.tagHandler.updateTag())
		r.Delete("/tags/{tagID}", handlers.tagHandler.deleteTag())
	})
}
