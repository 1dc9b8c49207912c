package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aquareyes/carwash-admin/internal/middleware"
	"github.com/aquareyes/carwash-admin/internal/models"
	"github.com/aquareyes/carwash-admin/internal/validators"
)

type OrganizationHandler struct {
	db *gorm.DB
}

func NewOrganizationHandler(db *gorm.DB) *OrganizationHandler {
	return &OrganizationHandler{db: db}
}

// --------- Requests ---------

type CreateOrganizationRequest struct {
	Name          string `json:"name" binding:"required,min=2"`
	ContactPerson string `json:"contact_person"`
	PhoneNumber   string `json:"phone_number"`
}

type UpdateOrganizationRequest struct {
	Name          *string `json:"name,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
}

// --------- Handlers ---------

func (h *OrganizationHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Organization{})

	if c.Query("all") != "true" {
		q = q.Where("is_deleted = ?", false)
	}

	var orgs []models.Organization
	if err := q.Order("name ASC").Find(&orgs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_organizations"})
		return
	}

	c.JSON(http.StatusOK, orgs)
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.PhoneNumber != "" && !validators.IsPhoneNumberValid(req.PhoneNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone_number"})
		return
	}

	org := models.Organization{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		PhoneNumber:   req.PhoneNumber,
	}

	if err := h.db.Create(&org).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_organization"})
		return
	}

	writeAudit(h.db, &userID, "organization_created", "organization", &org.ID, nil)

	c.JSON(http.StatusCreated, org)
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var org models.Organization
	if err := h.db.Where("id = ?", id).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "organization_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_organization"})
		return
	}

	var req UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.PhoneNumber != nil && *req.PhoneNumber != "" && !validators.IsPhoneNumberValid(*req.PhoneNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone_number"})
		return
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.ContactPerson != nil {
		org.ContactPerson = *req.ContactPerson
	}
	if req.PhoneNumber != nil {
		org.PhoneNumber = *req.PhoneNumber
	}

	if err := h.db.Save(&org).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_organization"})
		return
	}

	writeAudit(h.db, &userID, "organization_updated", "organization", &org.ID, nil)

	c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var org models.Organization
	if err := h.db.Where("id = ?", id).First(&org).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "organization_not_found"})
		return
	}

	org.IsDeleted = true
	if err := h.db.Save(&org).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_organization"})
		return
	}

	writeAudit(h.db, &userID, "organization_deleted", "organization", &org.ID, nil)

	c.JSON(http.StatusOK, gin.H{"id": id})
}
