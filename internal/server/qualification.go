package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	networkdomain "github.com/teleforce-labs/teleforce/internal/network/domain"
)

func (s *Server) GetNetwork(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	summary, err := s.networkSvc.Aggregate(c.Request.Context(), code, networkdomain.RollupDirect)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, summary)
}

func (s *Server) GetActionPlan(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	plan, err := s.qualificationSvc.BuildPlan(c.Request.Context(), code)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, plan)
}
