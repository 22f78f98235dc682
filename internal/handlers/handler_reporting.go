package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	portssvc "github.com/cwsbrian/mone-mori-app/internal/core/ports/services"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
)

// reportingHandler serves the aggregate views for a space.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func registerReportingRoutes(spaceSpecific *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := spaceSpecific.Group("/reports")
	{
		reports.GET("/summary", h.summary)
		reports.GET("/breakdown", h.breakdown)
		reports.GET("/calendar", h.calendar)
	}
}

func (h *reportingHandler) summary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	totals, err := h.reportingService.SpaceSummary(c.Request.Context(), userID, c.Param("space_id"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(*totals))
}

func (h *reportingHandler) breakdown(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	// The breakdown is over expenses unless the type override says income.
	entryType := domain.EntryExpense
	if typeParam := c.Query("type"); typeParam != "" {
		entryType = domain.EntryType(typeParam)
		if !entryType.Valid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid type, expected income or expense"})
			return
		}
	}

	rows, err := h.reportingService.CategoryBreakdown(c.Request.Context(), userID, c.Param("space_id"), entryType, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBreakdownResponse(rows))
}

func (h *reportingHandler) calendar(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	monthParam := c.Query("month")
	parsed, err := time.Parse("2006-01", monthParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month, expected YYYY-MM"})
		return
	}

	days, err := h.reportingService.CalendarMarks(c.Request.Context(), userID, c.Param("space_id"), parsed.Year(), parsed.Month())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CalendarResponse{Days: days})
}
