package auth

import (
	"context"
	"os"
	"testing"
	"time"

	autherrors "github.com/Urbancode-IT/INOUT-sub000/internal/auth/errors"
	"github.com/Urbancode-IT/INOUT-sub000/internal/employee"
	employeeerrors "github.com/Urbancode-IT/INOUT-sub000/internal/employee/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byEmail map[string]*User
	byID    map[uuid.UUID]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*User{}, byID: map[uuid.UUID]*User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return gorm.ErrDuplicatedKey
	}
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type fakeEmployeeRepo struct {
	employee.Repository
	employees map[string]*employee.Employee
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) *User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	eID := uuid.New()
	u := &User{
		ID:         uuid.New(),
		EmployeeID: &eID,
		Name:       "Priya Raman",
		Email:      email,
		Password:   string(hashed),
		Role:       "EMPLOYEE",
		IsActive:   true,
	}
	assert.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLogin_IssuesTokenWithEmployeeClaim(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	t.Cleanup(func() { os.Unsetenv("JWT_SECRET") })

	repo := newFakeUserRepo()
	u := seedUser(t, repo, "priya@urbancode.in", "secret123")

	svc := NewService(repo, &fakeEmployeeRepo{})

	access, refresh, resp, err := svc.Login(context.Background(), "priya@urbancode.in", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, u.EmployeeID.String(), resp.EmployeeID)

	token, err := jwt.Parse(access, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, u.EmployeeID.String(), claims["employee_id"])
	assert.Equal(t, "EMPLOYEE", claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "priya@urbancode.in", "secret123")

	svc := NewService(repo, &fakeEmployeeRepo{})

	_, _, _, err := svc.Login(context.Background(), "priya@urbancode.in", "wrong")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), &fakeEmployeeRepo{})

	_, _, _, err := svc.Login(context.Background(), "nobody@urbancode.in", "secret123")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "priya@urbancode.in", "secret123")
	u.IsActive = false

	svc := NewService(repo, &fakeEmployeeRepo{})

	_, _, _, err := svc.Login(context.Background(), "priya@urbancode.in", "secret123")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestRegister_RequiresApprovedEmployee(t *testing.T) {
	pendingID := uuid.New()
	emplRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{
		pendingID.String(): {ID: pendingID, Status: employee.StatusPending},
	}}

	svc := NewService(newFakeUserRepo(), emplRepo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		EmployeeID: pendingID.String(),
		Email:      "priya@urbancode.in",
		Name:       "Priya Raman",
		Password:   "secret123",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotActive)
}

func TestRegister_UnknownEmployee(t *testing.T) {
	svc := NewService(newFakeUserRepo(), &fakeEmployeeRepo{employees: map[string]*employee.Employee{}})

	_, err := svc.Register(context.Background(), RegisterRequest{
		EmployeeID: uuid.New().String(),
		Email:      "priya@urbancode.in",
		Name:       "Priya Raman",
		Password:   "secret123",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestRegister_ThenLogin(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	t.Cleanup(func() { os.Unsetenv("JWT_SECRET") })

	activeID := uuid.New()
	emplRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{
		activeID.String(): {ID: activeID, Status: employee.StatusActive, JoinDate: time.Now()},
	}}
	repo := newFakeUserRepo()

	svc := NewService(repo, emplRepo)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		EmployeeID: activeID.String(),
		Email:      "priya@urbancode.in",
		Name:       "Priya Raman",
		Password:   "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, activeID.String(), resp.EmployeeID)

	_, _, loginResp, err := svc.Login(context.Background(), "priya@urbancode.in", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, resp.ID, loginResp.ID)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	t.Cleanup(func() { os.Unsetenv("JWT_SECRET") })

	repo := newFakeUserRepo()
	seedUser(t, repo, "priya@urbancode.in", "secret123")

	svc := NewService(repo, &fakeEmployeeRepo{})

	_, refresh, _, err := svc.Login(context.Background(), "priya@urbancode.in", "secret123")
	assert.NoError(t, err)

	newAccess, newRefresh, resp, err := svc.RefreshToken(context.Background(), refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, "priya@urbancode.in", resp.Email)
}

func TestRefreshToken_Garbage(t *testing.T) {
	svc := NewService(newFakeUserRepo(), &fakeEmployeeRepo{})

	_, _, _, err := svc.RefreshToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}
