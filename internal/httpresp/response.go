package httpresp

import "github.com/gin-gonic/gin"

type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int64 `json:"total_pages"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Page[T any](c *gin.Context, data []T, page, limit int, total int64) {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	c.JSON(200, PageResponse[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		TotalPages: pages,
	})
}
