package controllers

import (
	"github.com/Fryupi/magazin/pkg/resp"
	"github.com/Fryupi/magazin/services"
	"github.com/Fryupi/magazin/utils"

	"github.com/gin-gonic/gin"
)

type SellerController struct {
	Svc *services.DashboardService
}

func NewSellerController(s *services.DashboardService) *SellerController {
	return &SellerController{Svc: s}
}

// GET /seller/dashboard (seller)
func (h *SellerController) Dashboard(c *gin.Context) {
	out, err := h.Svc.ForSeller(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
