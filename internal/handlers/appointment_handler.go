package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/aquareyes/carwash-admin/internal/domain/appointment"
	"github.com/aquareyes/carwash-admin/internal/httperr"
	"github.com/aquareyes/carwash-admin/internal/middleware"
	"github.com/aquareyes/carwash-admin/internal/models"
	"github.com/aquareyes/carwash-admin/internal/timezone"
	ucAppointment "github.com/aquareyes/carwash-admin/internal/usecase/appointment"
	"github.com/aquareyes/carwash-admin/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	createUC     *ucAppointment.CreateAppointment
	updateUC     *ucAppointment.UpdateAppointment
	deleteUC     *ucAppointment.DeleteAppointment
	listByDateUC *ucAppointment.ListAppointmentsByDate

	loc *time.Location
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		createUC:     createUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		listByDateUC: listByDateUC,
		loc:          loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type appointmentServiceRequest struct {
	ServiceID string  `json:"service_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

type CreateAppointmentRequest struct {
	Date           time.Time                   `json:"date" binding:"required"`
	ClientType     string                      `json:"client_type"`
	OrganizationID *string                     `json:"organization_id"`
	CarNumber      string                      `json:"car_number"`
	PhoneNumber    string                      `json:"phone_number"`
	CarModel       string                      `json:"car_model"`
	Notes          string                      `json:"notes"`
	Services       []appointmentServiceRequest `json:"services" binding:"required"`
	EmployeeIDs    []string                    `json:"employee_ids"`
	Status         string                      `json:"status"`
}

type UpdateAppointmentRequest struct {
	Date           *time.Time                   `json:"date,omitempty"`
	ClientType     *string                      `json:"client_type,omitempty"`
	OrganizationID *string                      `json:"organization_id,omitempty"`
	CarNumber      *string                      `json:"car_number,omitempty"`
	PhoneNumber    *string                      `json:"phone_number,omitempty"`
	CarModel       *string                      `json:"car_model,omitempty"`
	Notes          *string                      `json:"notes,omitempty"`
	Services       *[]appointmentServiceRequest `json:"services,omitempty"`
	EmployeeIDs    *[]string                    `json:"employee_ids,omitempty"`
	Status         *string                      `json:"status,omitempty"`
}

func toSnapshots(reqs []appointmentServiceRequest) models.ServiceSnapshots {
	out := make(models.ServiceSnapshots, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, models.AppointmentService{
			ServiceID: r.ServiceID,
			Name:      r.Name,
			Price:     r.Price,
			Quantity:  r.Quantity,
		})
	}
	return out
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Неверные данные запроса.")
		return
	}

	// Format checks live at this boundary only; the core never
	// re-validates them.
	if req.CarNumber != "" && !validators.IsCarNumberValid(req.CarNumber) {
		httperr.BadRequest(c, "invalid_car_number", "Номер должен быть в формате: 1234 AB-1")
		return
	}
	if req.PhoneNumber != "" && !validators.IsPhoneNumberValid(req.PhoneNumber) {
		httperr.BadRequest(c, "invalid_phone_number", "Номер телефона должен быть в формате: +375 (xx) xxx-xx-xx")
		return
	}

	draft := domain.Draft{
		Date:           req.Date,
		ClientType:     domain.ClientType(req.ClientType),
		OrganizationID: req.OrganizationID,
		CarNumber:      req.CarNumber,
		PhoneNumber:    req.PhoneNumber,
		CarModel:       req.CarModel,
		Notes:          req.Notes,
		Services:       toSnapshots(req.Services),
		EmployeeIDs:    req.EmployeeIDs,
		Status:         domain.Status(req.Status),
	}

	ap, err := h.createUC.Execute(c.Request.Context(), userID, draft)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Не удалось создать запись.")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Ошибка при создании записи.")
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	dateStr := c.Query("date")

	if dateStr != "" {
		date, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Неверная дата.")
			return
		}

		aps, err := h.listByDateUC.Execute(c.Request.Context(), date, h.loc)
		if err != nil {
			httperr.Internal(c, "failed_to_list_appointments", "Ошибка при загрузке записей.")
			return
		}
		c.JSON(200, aps)
		return
	}

	var aps []models.Appointment
	if err := h.db.Order("date ASC").Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Ошибка при загрузке записей.")
		return
	}
	c.JSON(200, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.Where("id = ?", id).First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Запись не найдена.")
		return
	}
	c.JSON(200, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Неверные данные запроса.")
		return
	}

	if req.CarNumber != nil && *req.CarNumber != "" && !validators.IsCarNumberValid(*req.CarNumber) {
		httperr.BadRequest(c, "invalid_car_number", "Номер должен быть в формате: 1234 AB-1")
		return
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != "" && !validators.IsPhoneNumberValid(*req.PhoneNumber) {
		httperr.BadRequest(c, "invalid_phone_number", "Номер телефона должен быть в формате: +375 (xx) xxx-xx-xx")
		return
	}

	patch := domain.Patch{
		Date:           req.Date,
		OrganizationID: req.OrganizationID,
		CarNumber:      req.CarNumber,
		PhoneNumber:    req.PhoneNumber,
		CarModel:       req.CarModel,
		Notes:          req.Notes,
	}
	if req.ClientType != nil {
		ct := domain.ClientType(*req.ClientType)
		patch.ClientType = &ct
	}
	if req.Services != nil {
		snaps := toSnapshots(*req.Services)
		patch.Services = &snaps
	}
	if req.EmployeeIDs != nil {
		ids := models.StringIDs(*req.EmployeeIDs)
		patch.EmployeeIDs = &ids
	}
	if req.Status != nil {
		st := domain.Status(*req.Status)
		patch.Status = &st
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), userID, id, patch)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Запись не найдена.")
			return
		}
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Не удалось обновить запись.")
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Ошибка при обновлении записи.")
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	deletedID, err := h.deleteUC.Execute(c.Request.Context(), userID, id)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Запись не найдена.")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Ошибка при удалении записи.")
		return
	}

	c.JSON(200, gin.H{"id": deletedID})
}

// parseRange reads start/end query params, end defaulting to the end
// of its day so the inclusive range covers the whole last day.
func parseRange(c *gin.Context, loc *time.Location) (time.Time, time.Time, bool) {
	startStr := c.Query("start")
	endStr := c.Query("end")

	if startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_range", "Нужны параметры start и end.")
		return time.Time{}, time.Time{}, false
	}

	start, err := time.ParseInLocation("2006-01-02", startStr, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_start", "Неверная дата начала.")
		return time.Time{}, time.Time{}, false
	}

	end, err := time.ParseInLocation("2006-01-02", endStr, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_end", "Неверная дата окончания.")
		return time.Time{}, time.Time{}, false
	}
	_, endOfDay := timezone.DayWindow(end, loc)

	return start, endOfDay.Add(-time.Nanosecond), true
}
