package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"portfolioCPT/internal/models"
	"portfolioCPT/internal/repository"
	"portfolioCPT/internal/service"
)

type PaginationResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type BlogsResponse struct {
	Posts      []models.BlogPost  `json:"posts"`
	Pagination PaginationResponse `json:"pagination"`
}

type CreateBlogRequest struct {
	Title            string   `json:"title" validate:"required,max=200"`
	Slug             string   `json:"slug" validate:"omitempty,max=255"`
	ShortDescription string   `json:"shortDescription" validate:"required,max=300"`
	Body             string   `json:"body" validate:"required"`
	FeaturedImage    *string  `json:"featuredImage" validate:"omitempty,url"`
	IsPublished      bool     `json:"isPublished"`
	Tags             []string `json:"tags"`
	MetaTitle        *string  `json:"metaTitle" validate:"omitempty,max=60"`
	MetaDescription  *string  `json:"metaDescription" validate:"omitempty,max=160"`
}

type UpdateBlogRequest struct {
	Title            *string  `json:"title" validate:"omitempty,min=1,max=200"`
	ShortDescription *string  `json:"shortDescription" validate:"omitempty,min=1,max=300"`
	Body             *string  `json:"body" validate:"omitempty,min=1"`
	FeaturedImage    *string  `json:"featuredImage" validate:"omitempty,url"`
	IsPublished      *bool    `json:"isPublished"`
	Tags             []string `json:"tags"`
	MetaTitle        *string  `json:"metaTitle" validate:"omitempty,max=60"`
	MetaDescription  *string  `json:"metaDescription" validate:"omitempty,max=160"`
}

// parsePagination читает page и limit из query, отсекая мусорные значения
func parsePagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	return page, limit
}

func blogListParams(r *http.Request) repository.BlogListParams {
	page, limit := parsePagination(r)

	params := repository.BlogListParams{
		Page:   page,
		Limit:  limit,
		Search: r.URL.Query().Get("search"),
		Tag:    r.URL.Query().Get("tag"),
		Sort:   r.URL.Query().Get("sort"),
	}

	if published := r.URL.Query().Get("published"); published != "" {
		value := published == "true"
		params.Published = &value
	}

	return params
}

func writeBlogsPage(w http.ResponseWriter, posts []models.BlogPost, total, page, limit int) {
	if posts == nil {
		posts = []models.BlogPost{}
	}

	WriteJSON(w, BlogsResponse{
		Posts: posts,
		Pagination: PaginationResponse{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	}, http.StatusOK)
}

// GetBlogs - админский список постов с поиском, фильтром и сортировкой
func (h *Handlers) GetBlogs(w http.ResponseWriter, r *http.Request) {
	params := blogListParams(r)

	posts, total, err := h.BlogService.ListBlogs(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeBlogsPage(w, posts, total, params.Page, params.Limit)
}

// GetPublicBlogs - публичный список, всегда только опубликованные посты
func (h *Handlers) GetPublicBlogs(w http.ResponseWriter, r *http.Request) {
	params := blogListParams(r)
	published := true
	params.Published = &published

	posts, total, err := h.BlogService.ListBlogs(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeBlogsPage(w, posts, total, params.Page, params.Limit)
}

// GetPublicBlog отдает опубликованный пост по слагу и увеличивает просмотры
func (h *Handlers) GetPublicBlog(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.BlogService.GetPublishedBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) GetBlog(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.BlogService.GetBlog(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	post, err := h.BlogService.CreateBlog(r.Context(), service.CreateBlogRequest{
		Title:            req.Title,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		Body:             req.Body,
		FeaturedImage:    req.FeaturedImage,
		IsPublished:      req.IsPublished,
		Tags:             req.Tags,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, post, http.StatusCreated)
}

func (h *Handlers) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	post, err := h.BlogService.UpdateBlog(r.Context(), postID, service.UpdateBlogRequest{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Body:             req.Body,
		FeaturedImage:    req.FeaturedImage,
		IsPublished:      req.IsPublished,
		Tags:             req.Tags,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	if err := h.BlogService.DeleteBlog(r.Context(), postID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"message": "Пост удален"}, http.StatusOK)
}
