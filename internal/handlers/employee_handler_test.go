package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aquareyes/carwash-admin/internal/middleware"
	"github.com/aquareyes/carwash-admin/internal/models"
	"github.com/aquareyes/carwash-admin/internal/report"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Employee{},
		&models.Appointment{},
	))
	return db
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "test-user")
	})

	eh := NewEmployeeHandler(db)
	r.GET("/employees", eh.List)
	r.GET("/employees/:id", eh.Get)
	r.DELETE("/employees/:id", eh.Delete)

	rh := NewReportHandler(db, time.UTC)
	r.GET("/reports/employee/:id", rh.Employee)

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedEmployee(t *testing.T, db *gorm.DB, first, last string) models.Employee {
	t.Helper()
	e := models.Employee{FirstName: first, LastName: last, IsActive: true}
	require.NoError(t, db.WithContext(context.Background()).Create(&e).Error)
	return e
}

func TestEmployeeSoftDeleteHidesFromSelection(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	kept := seedEmployee(t, db, "Иван", "Иванов")
	gone := seedEmployee(t, db, "Пётр", "Петров")

	w := doRequest(t, r, http.MethodDelete, "/employees/"+gone.ID)
	require.Equal(t, http.StatusOK, w.Code)

	// The default selection list no longer shows the deleted employee.
	w = doRequest(t, r, http.MethodGet, "/employees")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, kept.ID, listed[0].ID)

	// ?all=true still exposes the full roster for history resolution.
	w = doRequest(t, r, http.MethodGet, "/employees?all=true")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)

	// Lookup by id keeps resolving, and the record is flagged.
	w = doRequest(t, r, http.MethodGet, "/employees/"+gone.ID)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.IsDeleted)
}

func TestEmployeeReportResolvesSoftDeletedEmployee(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	emp := seedEmployee(t, db, "Пётр", "Петров")

	ap := models.Appointment{
		Date:        time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
		Status:      "completed",
		TotalPrice:  80,
		EmployeeIDs: models.StringIDs{emp.ID},
		Services: models.ServiceSnapshots{
			{ServiceID: "wash", Name: "Мойка кузова", Price: 80, Quantity: 1},
		},
	}
	require.NoError(t, db.Create(&ap).Error)

	w := doRequest(t, r, http.MethodDelete, "/employees/"+emp.ID)
	require.Equal(t, http.StatusOK, w.Code)

	// Periods from before the deletion still attribute earnings.
	w = doRequest(t, r, http.MethodGet,
		"/reports/employee/"+emp.ID+"?start=2024-01-01&end=2024-01-31")
	require.Equal(t, http.StatusOK, w.Code)

	var rep report.EmployeeReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, emp.ID, rep.EmployeeID)
	assert.Equal(t, 80.0, rep.TotalEarnings)
	assert.Equal(t, 1, rep.AppointmentsCount)
	assert.Equal(t, "Пётр Петров", rep.Employee.FullName())
}
