package advertisement

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"adboard/internal/domain"
	"adboard/internal/middleware"
	"adboard/internal/pkg/response"
	"adboard/internal/pkg/validator"
	"adboard/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group with OptionalJWTAuth applied: list/retrieve
// allow anonymous callers, everything else checks authentication per action.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	ads := rg.Group("/advertisements")
	{
		ads.GET("", h.List)
		ads.POST("", h.Create)
		ads.GET("/favorites", h.Favorites)
		ads.GET("/:id", h.Get)
		ads.PUT("/:id", h.Update)
		ads.PATCH("/:id", h.Update)
		ads.DELETE("/:id", h.Delete)
		ads.POST("/:id/favorite", h.AddFavorite)
		ads.DELETE("/:id/unfavorite", h.RemoveFavorite)
	}
}

// List возвращает объявления с учётом видимости и фильтров.
//
// @Summary Список объявлений
// @Tags Advertisement
// @Produce json
// @Param page query int false "Номер страницы" default(1)
// @Param per_page query int false "Элементов на страницу" default(20)
// @Param created_at_after query string false "Создано после (RFC3339 или YYYY-MM-DD)"
// @Param created_at_before query string false "Создано до"
// @Param creator query int false "ID автора"
// @Param status query string false "OPEN | CLOSED | DRAFT"
// @Param favorite query bool false "Только избранное текущего пользователя"
// @Success 200 {object} ListResponse
// @Router /advertisements [get]
func (h *Handler) List(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	filter, ok := parseFilter(c, caller)
	if !ok {
		return
	}
	page, perPage := parsePagination(c)

	res, err := h.service.List(c.Request.Context(), caller, filter, page, perPage)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list advertisements")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	res, err := h.service.Get(c.Request.Context(), caller, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Create(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if !caller.Authenticated() {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	res, err := h.service.Create(c.Request.Context(), caller, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) Update(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if !caller.Authenticated() {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	res, err := h.service.Update(c.Request.Context(), caller, id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Delete(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if !caller.Authenticated() {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), caller, id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddFavorite добавляет объявление в избранное текущего пользователя.
//
// @Summary Добавить в избранное
// @Tags Favorite
// @Security BearerAuth
// @Success 201 "Добавлено"
// @Success 200 "Уже было в избранном"
// @Failure 400 "Нельзя добавить своё объявление"
// @Router /advertisements/{id}/favorite [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if !caller.Authenticated() {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	created, err := h.service.AddFavorite(c.Request.Context(), caller, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, gin.H{"detail": "Added to favorites"})
}

// RemoveFavorite убирает объявление из избранного; отсутствие записи — не ошибка.
//
// @Summary Убрать из избранного
// @Tags Favorite
// @Security BearerAuth
// @Success 204 "Убрано (или не было)"
// @Router /advertisements/{id}/unfavorite [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if !caller.Authenticated() {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.RemoveFavorite(c.Request.Context(), caller, id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Favorites возвращает страницу объявлений из избранного текущего пользователя.
func (h *Handler) Favorites(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if !caller.Authenticated() {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	page, perPage := parsePagination(c)

	res, err := h.service.Favorites(c.Request.Context(), caller, page, perPage)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list favorites")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Advertisement not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't have permission to modify this advertisement")
	case errors.Is(err, ErrOpenLimitExceeded):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed",
			gin.H{"status": ErrOpenLimitExceeded.Error()})
	case errors.Is(err, ErrOwnFavorite):
		response.Error(c, http.StatusBadRequest, "CANNOT_FAVORITE_OWN", ErrOwnFavorite.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal server error")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid advertisement id")
		return 0, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}

func parseFilter(c *gin.Context, caller domain.Caller) (repository.AdvertisementFilter, bool) {
	var f repository.AdvertisementFilter

	if v := c.Query("created_at_after"); v != "" {
		t, err := parseTime(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_FILTER", "Invalid created_at_after value")
			return f, false
		}
		f.CreatedAfter = &t
	}
	if v := c.Query("created_at_before"); v != "" {
		t, err := parseTime(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_FILTER", "Invalid created_at_before value")
			return f, false
		}
		f.CreatedBefore = &t
	}
	if v := c.Query("creator"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_FILTER", "Invalid creator value")
			return f, false
		}
		f.CreatorID = &id
	}
	if v := c.Query("status"); v != "" {
		status := domain.AdStatus(v)
		f.Status = &status
	}
	if v := c.Query("favorite"); v != "" {
		fav, err := strconv.ParseBool(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_FILTER", "Invalid favorite value")
			return f, false
		}
		// favorite=false и анонимные запросы — pass-through:
		// выборка "не в избранном" не поддерживается.
		if fav && caller.Authenticated() {
			f.FavoriteOf = caller.ID
		}
	}

	return f, true
}

func parseTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
