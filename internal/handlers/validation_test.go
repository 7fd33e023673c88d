package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	appValidator "github.com/charlesng35/marketadmin/pkg/validator"
)

func TestFormatValidationError(t *testing.T) {
	err := appValidator.ValidationErrors{
		{Field: "payee_name", Tag: "notblank"},
		{Field: "amount", Tag: "gte", Param: "0"},
		{Field: "type", Tag: "oneof", Param: "a b"},
	}

	msg := formatValidationError(err)
	require.Equal(t, "payee name is required; amount must be at least 0; type must be one of: a b", msg)
	require.Equal(t, "invalid request payload", formatValidationError(nil))
}

func TestParseIDRejectsNonNumeric(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, raw := range []string{"abc", "0", "-1"} {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		_, ok := parseID(c)
		require.False(t, ok, raw)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	id, ok := parseID(c)
	require.True(t, ok)
	require.Equal(t, uint(7), id)
}
