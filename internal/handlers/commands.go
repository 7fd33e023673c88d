package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/marketadmin/pkg/response"
)

// byID adapts a body-less command on a single record into a gin handler.
func byID[T any](command func(ctx context.Context, id uint) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		result, err := command(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, result)
	}
}

// listByStatus adapts a status-filtered list query into a gin handler.
func listByStatus[T any](param string, query func(ctx context.Context, status string) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query(param)
		items, err := query(c.Request.Context(), status)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.List(c, items, status)
	}
}
