package employee

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	employeeerrors "github.com/Urbancode-IT/INOUT-sub000/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn  func(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	approveFn func(ctx context.Context, id string) (EmployeeResponse, error)
	getAllFn  func(ctx context.Context) ([]EmployeeResponse, error)
}

func (f *fakeService) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) Approve(ctx context.Context, id string) (EmployeeResponse, error) {
	return f.approveFn(ctx, id)
}
func (f *fakeService) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	return nil, nil
}
func (f *fakeService) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	return EmployeeResponse{}, nil
}
func (f *fakeService) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	return EmployeeResponse{}, nil
}
func (f *fakeService) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeService) JoinDate(ctx context.Context, employeeID string) (time.Time, error) {
	return time.Time{}, nil
}

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFn: func(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
			assert.Equal(t, "priya@urbancode.in", req.Email)
			return EmployeeResponse{
				ID: uuid.New().String(), EmployeeNumber: "EMP-000001",
				FullName: req.FullName, Email: req.Email, Status: StatusPending,
			}, nil
		},
	}

	h := NewHandler(svc)

	body := []byte(`{"full_name":"Priya Raman","email":"priya@urbancode.in","join_date":"2025-06-16"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "EMP-000001")
}

func TestHandler_Create_MissingEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&fakeService{})

	body := []byte(`{"full_name":"Priya Raman","join_date":"2025-06-16"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestHandler_Approve_NotPending(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		approveFn: func(ctx context.Context, id string) (EmployeeResponse, error) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotPending
		},
	}

	h := NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Request = httptest.NewRequest(http.MethodPost, "/employees/x/approve", nil)
	h.Approve(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}
