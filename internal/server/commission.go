package server

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetCommissions(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		AbortWithError(c, newValidationError("month", "missing_month", "month query parameter is required (YYYY-MM)"))
		return
	}

	result, err := s.commissionSvc.CalculateMonth(c.Request.Context(), code, month)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, result)
}
