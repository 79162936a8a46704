// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"kronika/internal/flash"
	"kronika/internal/models"
	"kronika/internal/render"
	"kronika/internal/service"
)

// Categories groups the category HTTP handlers.
type Categories struct {
	renderer   *render.Renderer
	flashes    *flash.Store
	categories *service.CategoryService
}

// NewCategories creates the category handler group.
func NewCategories(renderer *render.Renderer, flashes *flash.Store, categories *service.CategoryService) *Categories {
	return &Categories{renderer: renderer, flashes: flashes, categories: categories}
}

// List renders the paginated category list.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)

	result, err := h.categories.List(page)
	if err != nil {
		slog.Error("list categories failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{"Page": result}
	if result.HasPrev() {
		data["PrevURL"] = pageURL("/category", result.Number-1, 0)
	}
	if result.HasNext() {
		data["NextURL"] = pageURL("/category", result.Number+1, 0)
	}

	h.renderer.Page(w, r, "category_index", &render.PageData{Title: "Categories", Data: data})
}

// New renders the blank category form.
func (h *Categories) New(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, &models.Category{}, nil, true)
}

// Create handles the new-category form submission.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	category := &models.Category{Name: r.PostFormValue("name")}

	if err := h.categories.Save(category); err != nil {
		if errs, ok := fieldErrors(err); ok {
			h.renderForm(w, r, category, errs, true)
			return
		}
		slog.Error("create category failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	notice(h.flashes, w, r, "success", "Category created.")
	http.Redirect(w, r, "/category", http.StatusSeeOther)
}

// Edit renders the pre-filled edit form.
func (h *Categories) Edit(w http.ResponseWriter, r *http.Request) {
	category, ok := h.load(w, r)
	if !ok {
		return
	}
	h.renderForm(w, r, category, nil, false)
}

// Update handles the edit form submission. The slug is re-derived from
// the new name by the service.
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	category, ok := h.load(w, r)
	if !ok {
		return
	}

	category.Name = r.PostFormValue("name")

	if err := h.categories.Save(category); err != nil {
		if errs, ok := fieldErrors(err); ok {
			h.renderForm(w, r, category, errs, false)
			return
		}
		slog.Error("update category failed", "id", category.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	notice(h.flashes, w, r, "success", "Category updated.")
	http.Redirect(w, r, "/category", http.StatusSeeOther)
}

// DeleteConfirm renders the delete confirmation view without side
// effects.
func (h *Categories) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	category, ok := h.load(w, r)
	if !ok {
		return
	}

	h.renderer.Page(w, r, "category_delete", &render.PageData{
		Title: "Delete category",
		Data:  map[string]any{"Category": category},
	})
}

// Delete removes the category after confirmation. A category that
// still contains articles is not deleted; the conflict becomes a
// notice and a redirect back to the list, not an error page.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	category, ok := h.load(w, r)
	if !ok {
		return
	}

	err := h.categories.Delete(category)
	if errors.Is(err, service.ErrCategoryInUse) {
		notice(h.flashes, w, r, "error", "Category still contains articles and cannot be deleted.")
		http.Redirect(w, r, "/category", http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("delete category failed", "id", category.ID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	notice(h.flashes, w, r, "success", "Category deleted.")
	http.Redirect(w, r, "/category", http.StatusSeeOther)
}

// load resolves the {id} parameter to a category or writes a 404.
func (h *Categories) load(w http.ResponseWriter, r *http.Request) (*models.Category, bool) {
	id, ok := idParam(r)
	if !ok {
		http.NotFound(w, r)
		return nil, false
	}

	category, err := h.categories.FindOneByID(id)
	if err != nil {
		slog.Error("find category failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	if category == nil {
		http.NotFound(w, r)
		return nil, false
	}
	return category, true
}

// renderForm renders the category form.
func (h *Categories) renderForm(w http.ResponseWriter, r *http.Request, category *models.Category, errs map[string]string, isNew bool) {
	action := "/category/create"
	title := "New category"
	if !isNew {
		action = "/category/" + strconv.FormatInt(category.ID, 10) + "/edit"
		title = "Edit category"
	}

	h.renderer.Page(w, r, "category_form", &render.PageData{
		Title: title,
		Data: map[string]any{
			"Category": category,
			"Errors":   errs,
			"IsNew":    isNew,
			"Action":   action,
		},
	})
}
