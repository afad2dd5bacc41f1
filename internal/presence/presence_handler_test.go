package presence_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Urbancode-IT/INOUT-sub000/internal/presence"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	summaryFn  func(ctx context.Context, employeeID string, year int, month time.Month) (presence.SummaryResponse, error)
	calendarFn func(ctx context.Context, employeeID string, year int, month time.Month) (presence.CalendarResponse, error)
}

func (f *fakeService) MonthlySummary(ctx context.Context, employeeID string, year int, month time.Month) (presence.SummaryResponse, error) {
	return f.summaryFn(ctx, employeeID, year, month)
}
func (f *fakeService) Calendar(ctx context.Context, employeeID string, year int, month time.Month) (presence.CalendarResponse, error) {
	return f.calendarFn(ctx, employeeID, year, month)
}

func TestHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	employeeID := uuid.New().String()

	svc := &fakeService{
		summaryFn: func(ctx context.Context, eid string, year int, month time.Month) (presence.SummaryResponse, error) {
			assert.Equal(t, employeeID, eid)
			assert.Equal(t, 2025, year)
			assert.Equal(t, time.June, month)
			return presence.SummaryResponse{
				EmployeeID: eid, Year: year, Month: int(month),
				TotalDays: 30, WorkingDays: 21, PresentDays: 18, AbsentDays: 3, LeaveDays: 9,
			}, nil
		},
	}

	h := presence.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", employeeID)
	c.Request = httptest.NewRequest(http.MethodGet, "/presence/summary?year=2025&month=6", nil)
	h.GetSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"present_days\":18")
}

func TestHandler_GetSummary_MissingQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := presence.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodGet, "/presence/summary", nil)
	h.GetSummary(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCalendar_AdminCanTargetOtherEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)
	target := uuid.New().String()

	svc := &fakeService{
		calendarFn: func(ctx context.Context, eid string, year int, month time.Month) (presence.CalendarResponse, error) {
			assert.Equal(t, target, eid)
			return presence.CalendarResponse{EmployeeID: eid, Year: year, Month: int(month)}, nil
		},
	}

	h := presence.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", uuid.New().String())
	c.Set("has_read_all", true)
	c.Params = gin.Params{{Key: "employee_id", Value: target}}
	c.Request = httptest.NewRequest(http.MethodGet, "/presence/calendar/"+target+"?year=2025&month=6", nil)
	h.GetCalendar(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
