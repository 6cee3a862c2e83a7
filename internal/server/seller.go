package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	sellerdomain "github.com/teleforce-labs/teleforce/internal/seller/domain"
)

func (s *Server) CreateSeller(c *gin.Context) {
	var req sellerdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	seller, err := s.sellerSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, seller)
}

func (s *Server) GetSeller(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	seller, err := s.sellerSvc.GetByCode(c.Request.Context(), code)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, seller)
}

func (s *Server) ListSellers(c *gin.Context) {
	var opts sellerdomain.ListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.sellerSvc.List(c.Request.Context(), opts)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, resp.Sellers, &resp.PageInfo)
}

func (s *Server) ListRecruits(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	recruits, err := s.sellerSvc.ListRecruits(c.Request.Context(), code)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, recruits)
}
