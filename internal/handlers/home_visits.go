package handlers

import (
	"ncd-clinic-server/internal/middleware"
	"ncd-clinic-server/internal/service"
	"ncd-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// HomeVisitHandler handles outreach entry requests.
type HomeVisitHandler struct {
	Visits *service.HomeVisitService
}

// NewHomeVisitHandler creates a new HomeVisitHandler.
func NewHomeVisitHandler(visits *service.HomeVisitService) *HomeVisitHandler {
	return &HomeVisitHandler{Visits: visits}
}

// CreateHomeVisit handles recording a new outreach entry.
func (h *HomeVisitHandler) CreateHomeVisit(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req service.HomeVisitInput
	if !utils.BindAndValidate(c, &req) {
		return
	}

	visit, err := h.Visits.Create(caller, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, "Home visit created successfully", visit)
}

// GetHomeVisits handles listing the outreach entries visible to the caller.
func (h *HomeVisitHandler) GetHomeVisits(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	visits, err := h.Visits.List(caller)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "Home visits fetched successfully", visits)
}
