package v1

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// bindPaging reads the limit and offset query parameters into limit and offset when present
func bindPaging(ctx *gin.Context, limit, offset *int) error {
	if v := ctx.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid limit %q", v)
		}
		*limit = n
	}
	if v := ctx.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid offset %q", v)
		}
		*offset = n
	}
	return nil
}

// queryDecimal parses an optional decimal query parameter
func queryDecimal(ctx *gin.Context, key string) (*decimal.Decimal, error) {
	v := ctx.Query(key)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", key, v)
	}
	return &d, nil
}
