package api

import (
	"net/http"

	"github.com/openblogger/blog-backend/database"
	"github.com/openblogger/blog-backend/errs"
	"github.com/openblogger/blog-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tagRepo   *database.TagRepo
}

func newTagHandler(tagRepo *database.TagRepo) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tagRepo:   tagRepo,
	}
}

type createTagRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateTagRequest struct {
	Name string `json:"name" validate:"required"`
}

type tagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// tagPostResponse is the shape of a post listed under a tag.
type tagPostResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// createTag creates a new tag
// @Summary Create tag
// @Description Creates a tag with a unique name
// @Tags Tags
// @Accept json
// @Produce json
// @Param tag body createTagRequest true "Tag data"
// @Success 201 {object} tagResponse "Created tag"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid tag data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Conflict - Tag name taken"
// @Router /tags [post]
func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTagRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		tag := models.Tag{Name: req.Name}
		if err := h.tagRepo.Add(&tag); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create tag", "tag", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, tagResponse{ID: tag.ID, Name: tag.Name})
	}
}

// getAllTags retrieves a page of tags
// @Summary List tags
// @Description Retrieves tags ordered by id ascending
// @Tags Tags
// @Accept json
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} tagResponse "List of tags"
// @Router /tags [get]
func (h tagHandler) getAllTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := paginationParams(r)

		tags, err := h.tagRepo.FindAll(skip, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tags", "tags", err))
			return
		}

		response := make([]tagResponse, 0, len(tags))
		for _, tag := range tags {
			response = append(response, tagResponse{ID: tag.ID, Name: tag.Name})
		}

		h.responder.WriteJSON(w, response)
	}
}

// getTag retrieves a specific tag by ID
// @Summary Get tag
// @Description Retrieves a tag by id
// @Tags Tags
// @Accept json
// @Produce json
// @Param tagID path int true "Tag ID"
// @Success 200 {object} tagResponse "Tag details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid tagID"
// @Failure 404 {object} ErrorResponse "Not Found - Tag not found"
// @Router /tags/{tagID} [get]
func (h tagHandler) getTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, apiErr := parseIDParam(r, "tagID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		tag, err := h.tagRepo.FindByID(tagID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tag", "tag", err))
			return
		}
		if tag == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("tag not found"))
			return
		}

		h.responder.WriteJSON(w, tagResponse{ID: tag.ID, Name: tag.Name})
	}
}

// updateTag renames a tag
// @Summary Update tag
// @Description Renames a tag. Any authenticated caller may rename any tag.
// @Tags Tags
// @Accept json
// @Produce json
// @Param tagID path int true "Tag ID"
// @Param tag body updateTagRequest true "New tag name"
// @Success 200 {object} tagResponse "Updated tag"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid tag data"
// @Failure 404 {object} ErrorResponse "Not Found - Tag not found"
// @Router /tags/{tagID} [put]
func (h tagHandler) updateTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, apiErr := parseIDParam(r, "tagID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var req updateTagRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		tag, err := h.tagRepo.FindByID(tagID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tag", "tag", err))
			return
		}
		if tag == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("tag not found"))
			return
		}

		tag.Name = req.Name
		if err := h.tagRepo.Update(tag); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update tag", "tag", err))
			return
		}

		h.responder.WriteJSON(w, tagResponse{ID: tag.ID, Name: tag.Name})
	}
}

// deleteTag deletes a tag
// @Summary Delete tag
// @Description Deletes a tag and removes it from every post. Any authenticated caller may delete any tag.
// @Tags Tags
// @Accept json
// @Produce json
// @Param tagID path int true "Tag ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid tagID"
// @Failure 404 {object} ErrorResponse "Not Found - Tag not found"
// @Router /tags/{tagID} [delete]
func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, apiErr := parseIDParam(r, "tagID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		tag, err := h.tagRepo.FindByID(tagID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tag", "tag", err))
			return
		}
		if tag == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("tag not found"))
			return
		}

		if err := h.tagRepo.Delete(tag); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete tag", "tag", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// getTagPosts lists the posts carrying a tag
// @Summary List a tag's posts
// @Description Retrieves the active posts associated with the tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param tagID path int true "Tag ID"
// @Success 200 {array} tagPostResponse "Posts carrying the tag"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid tagID"
// @Failure 404 {object} ErrorResponse "Not Found - Tag not found"
// @Router /tags/{tagID}/posts [get]
func (h tagHandler) getTagPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, apiErr := parseIDParam(r, "tagID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		posts, err := h.tagRepo.FindPosts(tagID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tag posts", "tag", err))
			return
		}
		if posts == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("tag not found"))
			return
		}

		response := make([]tagPostResponse, 0, len(posts))
		for _, post := range posts {
			response = append(response, tagPostResponse{
				ID:      post.ID,
				Title:   post.Title,
				Content: post.Content,
			})
		}

		h.responder.WriteJSON(w, response)
	}
}
