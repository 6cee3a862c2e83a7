package server

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetStatement(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		AbortWithError(c, newValidationError("month", "missing_month", "month query parameter is required (YYYY-MM)"))
		return
	}

	stmt, err := s.statementSvc.Render(c.Request.Context(), code, month)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filename := fmt.Sprintf("statement-%s-%s.pdf", stmt.SellerCode, stmt.Month)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("X-Document-Id", stmt.ID)
	c.Data(200, "application/pdf", stmt.PDF)
}
