package payroll

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	payrollerrors "github.com/Urbancode-IT/INOUT-sub000/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	generateFn func(ctx context.Context, actorID string, req GeneratePayrollRequest) (PayrollResponse, error)
	getByIDFn  func(ctx context.Context, id string) (PayrollResponse, error)
	payslipFn  func(ctx context.Context, id string) ([]byte, error)
}

func (f *fakeService) Generate(ctx context.Context, actorID string, req GeneratePayrollRequest) (PayrollResponse, error) {
	return f.generateFn(ctx, actorID, req)
}
func (f *fakeService) GetAll(ctx context.Context) ([]PayrollResponse, error) { return nil, nil }
func (f *fakeService) GetMine(ctx context.Context, employeeID string) ([]PayrollResponse, error) {
	return nil, nil
}
func (f *fakeService) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) MarkPaid(ctx context.Context, actorID, id string) (PayrollResponse, error) {
	return PayrollResponse{}, nil
}
func (f *fakeService) RenderPayslip(ctx context.Context, payrollID string) error { return nil }
func (f *fakeService) Payslip(ctx context.Context, id string) ([]byte, error) {
	return f.payslipFn(ctx, id)
}

func TestHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		generateFn: func(ctx context.Context, actorID string, req GeneratePayrollRequest) (PayrollResponse, error) {
			assert.Equal(t, 6, req.Month)
			return PayrollResponse{ID: uuid.New().String(), Status: StatusDraft, NetSalary: 2100000}, nil
		},
	}
	h := NewHandler(svc)

	body := []byte(`{"employee_id":"` + uuid.New().String() + `","year":2025,"month":6,"base_salary":2200000}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), StatusDraft)
}

func TestHandler_Generate_DuplicatePeriod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		generateFn: func(ctx context.Context, actorID string, req GeneratePayrollRequest) (PayrollResponse, error) {
			return PayrollResponse{}, payrollerrors.ErrPayrollAlreadyExists
		},
	}
	h := NewHandler(svc)

	body := []byte(`{"employee_id":"` + uuid.New().String() + `","year":2025,"month":6,"base_salary":2200000}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payrolls", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Generate(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")
}

func TestHandler_GetPayslip_OwnOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	owner := uuid.New().String()
	id := uuid.New().String()

	svc := &fakeService{
		getByIDFn: func(ctx context.Context, got string) (PayrollResponse, error) {
			assert.Equal(t, id, got)
			return PayrollResponse{ID: id, EmployeeID: owner}, nil
		},
		payslipFn: func(ctx context.Context, id string) ([]byte, error) {
			return []byte("%PDF-1.4 payload"), nil
		},
	}
	h := NewHandler(svc)

	// Another employee without read_all gets a 403.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", uuid.New().String())
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/"+id+"/payslip", nil)
	h.GetPayslip(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The owner gets the PDF bytes.
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Set("employee_id", owner)
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/"+id+"/payslip", nil)
	h.GetPayslip(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "%PDF")
}
