package handlers

import (
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aquareyes/carwash-admin/internal/httperr"
	"github.com/aquareyes/carwash-admin/internal/httpresp"
	"github.com/aquareyes/carwash-admin/internal/models"
	"github.com/aquareyes/carwash-admin/internal/report"
)

// ======================================================
// HANDLER
// ======================================================

type ReportHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewReportHandler(db *gorm.DB, loc *time.Location) *ReportHandler {
	return &ReportHandler{db: db, loc: loc}
}

func (h *ReportHandler) loadAppointments(c *gin.Context) ([]models.Appointment, bool) {
	var apps []models.Appointment
	if err := h.db.Find(&apps).Error; err != nil {
		httperr.Internal(c, "failed_to_load_appointments", "Ошибка при загрузке записей.")
		return nil, false
	}
	return apps, true
}

// ======================================================
// GENERAL
// ======================================================

func (h *ReportHandler) General(c *gin.Context) {
	start, end, ok := parseRange(c, h.loc)
	if !ok {
		return
	}

	apps, ok := h.loadAppointments(c)
	if !ok {
		return
	}

	// Soft-deleted employees stay in the roster here so periods from
	// before the deletion still attribute their earnings.
	var employees []models.Employee
	if err := h.db.Find(&employees).Error; err != nil {
		httperr.Internal(c, "failed_to_load_employees", "Ошибка при загрузке сотрудников.")
		return
	}

	r := report.General(apps, employees, start, end)

	// The generator guarantees no ordering; sorting for display is this
	// layer's concern.
	sort.Slice(r.EmployeeStats, func(i, j int) bool {
		return r.EmployeeStats[i].Earnings > r.EmployeeStats[j].Earnings
	})
	sort.Slice(r.ServiceStats, func(i, j int) bool {
		return r.ServiceStats[i].Count > r.ServiceStats[j].Count
	})

	httpresp.OK(c, r)
}

// ======================================================
// EMPLOYEE
// ======================================================

func (h *ReportHandler) Employee(c *gin.Context) {
	id := c.Param("id")

	start, end, ok := parseRange(c, h.loc)
	if !ok {
		return
	}

	// Lookup happens here, not in the generator: an unknown employee is
	// a "no report" response, never a generator failure. Soft-deleted
	// employees still resolve when requested by id.
	var employee models.Employee
	if err := h.db.Where("id = ?", id).First(&employee).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "Сотрудник не найден.")
		return
	}

	apps, ok := h.loadAppointments(c)
	if !ok {
		return
	}

	r := report.ForEmployee(employee, apps, start, end)

	sort.Slice(r.AppointmentDetails, func(i, j int) bool {
		return r.AppointmentDetails[i].Date.Before(r.AppointmentDetails[j].Date)
	})

	httpresp.OK(c, r)
}

// ======================================================
// DAILY
// ======================================================

func (h *ReportHandler) Daily(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Дата обязательна.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Неверная дата.")
		return
	}

	apps, ok := h.loadAppointments(c)
	if !ok {
		return
	}

	httpresp.OK(c, report.Daily(apps, date, h.loc))
}
