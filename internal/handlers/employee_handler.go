package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aquareyes/carwash-admin/internal/middleware"
	"github.com/aquareyes/carwash-admin/internal/models"
)

type EmployeeHandler struct {
	db *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{db: db}
}

// --------- Requests ---------

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2"`
	LastName  string `json:"last_name" binding:"required,min=2"`
}

type UpdateEmployeeRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// --------- Handlers ---------

// List returns the active selection list by default: soft-deleted
// employees are hidden unless ?all=true asks for the full set (needed
// to resolve names on historical appointments).
func (h *EmployeeHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Employee{})

	if c.Query("all") != "true" {
		q = q.Where("is_deleted = ?", false)
	}
	if c.Query("active") == "true" {
		q = q.Where("is_active = ?", true)
	}

	var employees []models.Employee
	if err := q.Order("last_name ASC").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_employees"})
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var employee models.Employee
	if err := h.db.Where("id = ?", id).First(&employee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee_not_found"})
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	employee := models.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
	}

	if err := h.db.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_employee"})
		return
	}

	writeAudit(h.db, &userID, "employee_created", "employee", &employee.ID, nil)

	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var employee models.Employee
	if err := h.db.Where("id = ?", id).First(&employee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_employee"})
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := h.db.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_employee"})
		return
	}

	writeAudit(h.db, &userID, "employee_updated", "employee", &employee.ID, nil)

	c.JSON(http.StatusOK, employee)
}

// Delete is a soft delete: the record stays so historical appointments
// keep resolving, it just disappears from selection lists.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var employee models.Employee
	if err := h.db.Where("id = ?", id).First(&employee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee_not_found"})
		return
	}

	employee.IsDeleted = true
	if err := h.db.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_employee"})
		return
	}

	writeAudit(h.db, &userID, "employee_deleted", "employee", &employee.ID, nil)

	c.JSON(http.StatusOK, gin.H{"id": id})
}
