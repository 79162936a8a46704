// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"kronika/internal/flash"
	"kronika/internal/middleware"
	"kronika/internal/models"
	"kronika/internal/render"
	"kronika/internal/service"
)

// Articles groups the article HTTP handlers: the public list and
// detail views (with comment submission) and the admin CRUD.
type Articles struct {
	renderer   *render.Renderer
	flashes    *flash.Store
	articles   *service.ArticleService
	comments   *service.CommentService
	categories *service.CategoryService
}

// NewArticles creates the article handler group.
func NewArticles(renderer *render.Renderer, flashes *flash.Store, articles *service.ArticleService, comments *service.CommentService, categories *service.CategoryService) *Articles {
	return &Articles{
		renderer:   renderer,
		flashes:    flashes,
		articles:   articles,
		comments:   comments,
		categories: categories,
	}
}

// List renders the paginated article list, optionally filtered by
// category. Admin callers get the richer management view.
func (h *Articles) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	filters := service.ArticleFilters{CategoryID: queryInt64(r, "filters_category_id")}

	resolved, err := h.articles.PrepareFilters(filters)
	if err != nil {
		slog.Error("resolve article filters failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	result, err := h.articles.List(page, filters)
	if err != nil {
		slog.Error("list articles failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var filterID int64
	if resolved.Category != nil {
		filterID = resolved.Category.ID
	}

	data := map[string]any{
		"Page":           result,
		"FilterCategory": resolved.Category,
	}
	if result.HasPrev() {
		data["PrevURL"] = pageURL("/", result.Number-1, filterID)
	}
	if result.HasNext() {
		data["NextURL"] = pageURL("/", result.Number+1, filterID)
	}

	name := "article_index"
	if middleware.CallerFromCtx(r.Context()).IsAdmin() {
		name = "article_index_admin"
	}

	h.renderer.Page(w, r, name, &render.PageData{Title: "Articles", Data: data})
}

// Show renders an article with its comments and the comment form, and
// accepts comment submissions on POST.
func (h *Articles) Show(w http.ResponseWriter, r *http.Request) {
	article, ok := h.load(w, r)
	if !ok {
		return
	}

	form := &models.Comment{ArticleID: article.ID}
	var fieldErrs map[string]string

	if r.Method == http.MethodPost {
		form.Nick = r.PostFormValue("nick")
		form.Email = r.PostFormValue("email")
		form.Content = r.PostFormValue("content")

		err := h.comments.Save(form)
		if err == nil {
			notice(h.flashes, w, r, "success", "Comment added.")
			http.Redirect(w, r, "/"+strconv.FormatInt(article.ID, 10), http.StatusSeeOther)
			return
		}

		fieldErrs, ok = fieldErrors(err)
		if !ok {
			slog.Error("save comment failed", "article_id", article.ID, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}

	comments, err := h.comments.ForArticle(article)
	if err != nil {
		slog.Error("list article comments failed", "article_id", article.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderer.Page(w, r, "article_show", &render.PageData{
		Title: article.Title,
		Data: map[string]any{
			"Article":  article,
			"Comments": comments,
			"Form":     form,
			"Errors":   fieldErrs,
		},
	})
}

// New renders the blank article form.
func (h *Articles) New(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, &models.Article{}, nil, true)
}

// Create handles the new-article form submission.
func (h *Articles) Create(w http.ResponseWriter, r *http.Request) {
	article := &models.Article{}
	h.bind(r, article)

	if err := h.articles.Save(article); err != nil {
		if errs, ok := fieldErrors(err); ok {
			h.renderForm(w, r, article, errs, true)
			return
		}
		slog.Error("create article failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	notice(h.flashes, w, r, "success", "Article created.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Edit renders the pre-filled edit form.
func (h *Articles) Edit(w http.ResponseWriter, r *http.Request) {
	article, ok := h.load(w, r)
	if !ok {
		return
	}
	h.renderForm(w, r, article, nil, false)
}

// Update handles the edit form submission.
func (h *Articles) Update(w http.ResponseWriter, r *http.Request) {
	article, ok := h.load(w, r)
	if !ok {
		return
	}

	h.bind(r, article)

	if err := h.articles.Save(article); err != nil {
		if errs, ok := fieldErrors(err); ok {
			h.renderForm(w, r, article, errs, false)
			return
		}
		slog.Error("update article failed", "id", article.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	notice(h.flashes, w, r, "success", "Article updated.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteConfirm renders the delete confirmation view. A bare GET must
// have no side effects.
func (h *Articles) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	article, ok := h.load(w, r)
	if !ok {
		return
	}

	h.renderer.Page(w, r, "article_delete", &render.PageData{
		Title: "Delete article",
		Data:  map[string]any{"Article": article},
	})
}

// Delete removes the article and its comments after confirmation.
func (h *Articles) Delete(w http.ResponseWriter, r *http.Request) {
	article, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := h.articles.Delete(article); err != nil {
		slog.Error("delete article failed", "id", article.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	notice(h.flashes, w, r, "success", "Article deleted.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// load resolves the {id} parameter to an article or writes a 404.
func (h *Articles) load(w http.ResponseWriter, r *http.Request) (*models.Article, bool) {
	id, ok := idParam(r)
	if !ok {
		http.NotFound(w, r)
		return nil, false
	}

	article, err := h.articles.FindOneByID(id)
	if err != nil {
		slog.Error("find article failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	if article == nil {
		http.NotFound(w, r)
		return nil, false
	}
	return article, true
}

// bind applies the article form fields.
func (h *Articles) bind(r *http.Request, article *models.Article) {
	article.Title = r.PostFormValue("title")
	article.Content = r.PostFormValue("content")
	article.CategoryID, _ = strconv.ParseInt(r.PostFormValue("category_id"), 10, 64)
}

// renderForm renders the article form with the category select.
func (h *Articles) renderForm(w http.ResponseWriter, r *http.Request, article *models.Article, errs map[string]string, isNew bool) {
	categories, err := h.categories.All()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	action := "/create"
	title := "New article"
	if !isNew {
		action = "/" + strconv.FormatInt(article.ID, 10) + "/edit"
		title = "Edit article"
	}

	h.renderer.Page(w, r, "article_form", &render.PageData{
		Title: title,
		Data: map[string]any{
			"Article":    article,
			"Categories": categories,
			"Errors":     errs,
			"IsNew":      isNew,
			"Action":     action,
		},
	})
}
