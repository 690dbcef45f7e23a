package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Paginate writes one page of items when the caller passes ?page, otherwise
// the full list.
func Paginate[T any](c *gin.Context, items []T) {
	if c.Query("page") == "" {
		Success(c, http.StatusOK, items, nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(items))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	meta := NewPaginationMeta(total, page, pageSize)
	Success(c, http.StatusOK, items[start:end], &meta)
}
