package api

import (
	"net/http"

	"github.com/openblogger/blog-backend/database"
	"github.com/openblogger/blog-backend/errs"
	"github.com/openblogger/blog-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	postRepo  *database.PostRepo
	tagRepo   *database.TagRepo
}

func newPostHandler(postRepo *database.PostRepo, tagRepo *database.TagRepo) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		postRepo:  postRepo,
		tagRepo:   tagRepo,
	}
}

type createPostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Tags    []uint `json:"tags"`
}

// updatePostRequest uses pointers so an omitted field is distinguishable
// from an explicitly empty one. A nil Tags keeps the current set; an empty
// list clears it.
type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Tags    *[]uint `json:"tags"`
}

type postTagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type postResponse struct {
	ID      uint              `json:"id"`
	Title   string            `json:"title"`
	Content string            `json:"content"`
	Tags    []postTagResponse `json:"tags"`
}

func newPostResponse(post *models.Post) postResponse {
	tags := make([]postTagResponse, 0, len(post.Tags))
	for _, tag := range post.Tags {
		tags = append(tags, postTagResponse{ID: tag.ID, Name: tag.Name})
	}
	return postResponse{
		ID:      post.ID,
		Title:   post.Title,
		Content: post.Content,
		Tags:    tags,
	}
}

// createPost creates a new post owned by the caller
// @Summary Create post
// @Description Creates a post owned by the authenticated user; unknown tag ids are ignored
// @Tags Posts
// @Accept json
// @Produce json
// @Param post body createPostRequest true "Post data"
// @Success 201 {object} postResponse "Created post with resolved tags"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid post data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /posts [post]
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := ctxGetUser(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req createPostRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		// Unknown ids simply don't resolve; no error for a partially
		// invalid tag list.
		tags, err := h.tagRepo.FindByIDs(req.Tags)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tags", "tags", err))
			return
		}

		post := models.Post{
			Title:   req.Title,
			Content: req.Content,
			UserID:  &caller.ID,
			Tags:    tags,
		}
		if err := h.postRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create post", "post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, newPostResponse(&post))
	}
}

// getAllPosts retrieves a page of posts
// @Summary List posts
// @Description Retrieves posts ordered by id ascending with their tags
// @Tags Posts
// @Accept json
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} postResponse "List of posts"
// @Router /posts [get]
func (h postHandler) getAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := paginationParams(r)

		posts, err := h.postRepo.FindAll(skip, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find posts", "posts", err))
			return
		}

		response := make([]postResponse, 0, len(posts))
		for _, post := range posts {
			response = append(response, newPostResponse(post))
		}

		h.responder.WriteJSON(w, response)
	}
}

// getPost retrieves a specific post by ID
// @Summary Get post
// @Description Retrieves a post by id with its tags
// @Tags Posts
// @Accept json
// @Produce json
// @Param postID path int true "Post ID"
// @Success 200 {object} postResponse "Post details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid postID"
// @Failure 404 {object} ErrorResponse "Not Found - Post not found"
// @Router /posts/{postID} [get]
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, apiErr := parseIDParam(r, "postID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		h.responder.WriteJSON(w, newPostResponse(post))
	}
}

// updatePost updates a post owned by the caller
// @Summary Update post
// @Description Updates title, content and/or tag set of a post the caller owns. A post owned by someone else reports not found.
// @Tags Posts
// @Accept json
// @Produce json
// @Param postID path int true "Post ID"
// @Param post body updatePostRequest true "Fields to change"
// @Success 200 {object} postResponse "Updated post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid post data"
// @Failure 404 {object} ErrorResponse "Not Found - Post not found or not owned"
// @Router /posts/{postID} [put]
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := ctxGetUser(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		postID, apiErr := parseIDParam(r, "postID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var req updatePostRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}
		if req.Title != nil && *req.Title == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("title", "must not be empty"))
			return
		}
		if req.Content != nil && *req.Content == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("content", "must not be empty"))
			return
		}

		// Scoped to the caller: an existing post owned by someone else
		// surfaces as not found.
		post, err := h.postRepo.FindOwnedByID(postID, caller.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		if req.Title != nil {
			post.Title = *req.Title
		}
		if req.Content != nil {
			post.Content = *req.Content
		}
		if err := h.postRepo.Update(post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update post", "post", err))
			return
		}

		if req.Tags != nil {
			tags, err := h.tagRepo.FindByIDs(*req.Tags)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find tags", "tags", err))
				return
			}
			if err := h.postRepo.ReplaceTags(post, tags); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update post tags", "post", err))
				return
			}
		}

		h.responder.WriteJSON(w, newPostResponse(post))
	}
}

// deletePost deletes a post owned by the caller
// @Summary Delete post
// @Description Deletes a post the caller owns along with its tag associations
// @Tags Posts
// @Accept json
// @Produce json
// @Param postID path int true "Post ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid postID"
// @Failure 404 {object} ErrorResponse "Not Found - Post not found or not owned"
// @Router /posts/{postID} [delete]
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := ctxGetUser(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		postID, apiErr := parseIDParam(r, "postID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		post, err := h.postRepo.FindOwnedByID(postID, caller.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		if err := h.postRepo.Delete(post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete post", "post", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
