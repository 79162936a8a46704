// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"kronika/internal/flash"
	"kronika/internal/models"
	"kronika/internal/render"
	"kronika/internal/service"
)

// Comments groups the comment moderation handlers. Creation lives on
// the article detail page; here admins list and delete.
type Comments struct {
	renderer *render.Renderer
	flashes  *flash.Store
	comments *service.CommentService
}

// NewComments creates the comment handler group.
func NewComments(renderer *render.Renderer, flashes *flash.Store, comments *service.CommentService) *Comments {
	return &Comments{renderer: renderer, flashes: flashes, comments: comments}
}

// List renders the paginated moderation view of all comments.
func (h *Comments) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)

	result, err := h.comments.List(page)
	if err != nil {
		slog.Error("list comments failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{"Page": result}
	if result.HasPrev() {
		data["PrevURL"] = pageURL("/comment", result.Number-1, 0)
	}
	if result.HasNext() {
		data["NextURL"] = pageURL("/comment", result.Number+1, 0)
	}

	h.renderer.Page(w, r, "comment_index", &render.PageData{Title: "Comments", Data: data})
}

// DeleteConfirm renders the delete confirmation view without side
// effects.
func (h *Comments) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	comment, ok := h.load(w, r)
	if !ok {
		return
	}

	h.renderer.Page(w, r, "comment_delete", &render.PageData{
		Title: "Delete comment",
		Data:  map[string]any{"Comment": comment},
	})
}

// Delete removes the comment after confirmation.
func (h *Comments) Delete(w http.ResponseWriter, r *http.Request) {
	comment, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := h.comments.Delete(comment); err != nil {
		slog.Error("delete comment failed", "id", comment.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	notice(h.flashes, w, r, "success", "Comment deleted.")
	http.Redirect(w, r, "/comment", http.StatusSeeOther)
}

// load resolves the {id} parameter to a comment or writes a 404.
func (h *Comments) load(w http.ResponseWriter, r *http.Request) (*models.Comment, bool) {
	id, ok := idParam(r)
	if !ok {
		http.NotFound(w, r)
		return nil, false
	}

	comment, err := h.comments.FindOneByID(id)
	if err != nil {
		slog.Error("find comment failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	if comment == nil {
		http.NotFound(w, r)
		return nil, false
	}
	return comment, true
}
