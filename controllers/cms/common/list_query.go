// Package common holds the request plumbing shared by the CMS handlers.
package common

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

// ListQuery is the parsed query string of a list endpoint.
type ListQuery struct {
	Filter listview.FilterState
	Page   int
	Limit  int
	// Paged is false when no page was asked for; the whole derived view is
	// returned so the panel can filter and paginate it locally.
	Paged bool
}

// ParsePageLimit reads page and limit: page < 1 becomes 1 and a limit
// outside 1..100 becomes 10.
func ParsePageLimit(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = listview.DefaultPageSize
	}
	return page, limit
}

// ParseListQuery reads search, status, category, sort, order, page and limit.
func ParseListQuery(c *gin.Context) (ListQuery, error) {
	status, err := listview.ParseStatus(c.Query("status"))
	if err != nil {
		return ListQuery{}, err
	}
	order, err := listview.ParseOrder(c.Query("order"))
	if err != nil {
		return ListQuery{}, err
	}

	q := ListQuery{
		Filter: listview.FilterState{
			Search:    c.Query("search"),
			Status:    status,
			Group:     c.DefaultQuery("category", listview.AllGroups),
			SortKey:   c.Query("sort"),
			SortOrder: order,
		},
	}
	_, q.Paged = c.GetQuery("page")
	q.Page, q.Limit = ParsePageLimit(c)
	return q, nil
}

// RespondList runs the collection through the list engine and writes it.
// Unknown sort keys and bad enum values are 400s.
func RespondList[T any](c *gin.Context, message string, items []T, schema listview.Schema[T]) {
	q, err := ParseListQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	view, err := listview.Derive(items, schema, q.Filter)
	if errors.Is(err, listview.ErrUnknownSortKey) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to filter "+schema.Entity))
		return
	}

	if !q.Paged {
		c.JSON(http.StatusOK, models.SuccessResponse(c, message, view))
		return
	}

	page := listview.Paginate(view, q.Page, q.Limit)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, message, page.Items, &models.Pagination{
		Page:       page.Number,
		Limit:      page.Size,
		Total:      page.TotalItems,
		TotalPages: page.TotalPages,
	}))
}
