package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/cwsbrian/mone-mori-app/internal/core/ports/services"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
)

// spaceHandler handles requests about spaces and the current-space selection.
type spaceHandler struct {
	spaceService portssvc.SpaceSvcFacade
}

// registerSpaceRoutes registers space routes plus the category, transaction
// and reporting routes nested under a specific space.
func registerSpaceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &spaceHandler{spaceService: services.Space}

	spaces := rg.Group("/spaces")
	{
		spaces.GET("", h.listSpaces)
		spaces.POST("", h.createSpace)
		spaces.GET("/current", h.currentSpace)
		spaces.PUT("/current", h.selectSpace)
	}

	spaceSpecific := rg.Group("/spaces/:space_id")
	{
		spaceSpecific.GET("", h.getSpace)
		spaceSpecific.PATCH("", h.updateSpace)
		spaceSpecific.DELETE("", h.deleteSpace)

		registerCategoryRoutes(rg, spaceSpecific, services.Category)
		registerTransactionRoutes(rg, spaceSpecific, services.Transaction)
		registerReportingRoutes(spaceSpecific, services.Reporting)
	}
}

func (h *spaceHandler) listSpaces(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	spaces, currentID, err := h.spaceService.ListSpacesForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListSpacesResponse(spaces, currentID))
}

func (h *spaceHandler) createSpace(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	space, err := h.spaceService.CreateSpace(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSpaceResponse(space))
}

func (h *spaceHandler) getSpace(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	space, err := h.spaceService.GetSpace(c.Request.Context(), userID, c.Param("space_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpaceResponse(space))
}

func (h *spaceHandler) updateSpace(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	space, err := h.spaceService.UpdateSpace(c.Request.Context(), userID, c.Param("space_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpaceResponse(space))
}

func (h *spaceHandler) deleteSpace(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.spaceService.DeleteSpace(c.Request.Context(), userID, c.Param("space_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *spaceHandler) currentSpace(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	space, err := h.spaceService.CurrentSpace(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if space == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No space selected"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSpaceResponse(space))
}

func (h *spaceHandler) selectSpace(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.SelectSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.spaceService.SelectSpace(c.Request.Context(), userID, req.SpaceID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
