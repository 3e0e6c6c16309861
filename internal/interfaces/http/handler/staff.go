package handler

import (
	"github.com/gin-gonic/gin"

	staffapp "github.com/laundrify/backend/internal/application/staff"
)

// StaffHandler handles staff administration and attendance
type StaffHandler struct {
	BaseHandler
	staffService *staffapp.Service
}

// NewStaffHandler creates a new StaffHandler
func NewStaffHandler(staffService *staffapp.Service) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// RegisterRoutes registers staff routes on the API group
func (h *StaffHandler) RegisterRoutes(rg *gin.RouterGroup) {
	staff := rg.Group("/staff")
	{
		staff.POST("", h.Create)
		staff.GET("", h.List)
		staff.POST("/attendance", h.SaveAttendance)
		staff.GET("/attendance", h.AttendanceByDate)
	}
}

// Create handles POST /staff
func (h *StaffHandler) Create(c *gin.Context) {
	var req staffapp.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.staffService.Create(c.Request.Context(), req, getActorEmail(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /staff
func (h *StaffHandler) List(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	members, err := h.staffService.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, members)
}

// SaveAttendance handles POST /staff/attendance
func (h *StaffHandler) SaveAttendance(c *gin.Context) {
	var req staffapp.SaveAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rows, err := h.staffService.SaveAttendance(c.Request.Context(), req, getActorEmail(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// AttendanceByDate handles GET /staff/attendance?date=YYYY-MM-DD
func (h *StaffHandler) AttendanceByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		h.BadRequest(c, "date query parameter is required")
		return
	}

	rows, err := h.staffService.AttendanceByDate(c.Request.Context(), date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}
