package rbac

import (
	"path/filepath"
	"testing"

	"github.com/Urbancode-IT/INOUT-sub000/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer(
		filepath.Join("infra", "model.conf"),
		filepath.Join("infra", "policy.csv"),
	)
	assert.NoError(t, err)
	return NewService(enforcer)
}

func TestEnforce_EmployeePermissions(t *testing.T) {
	svc := newTestService(t)

	ok, err := svc.Enforce("EMPLOYEE", "attendance", "create")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Enforce("EMPLOYEE", "presence", "read_all")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Enforce("EMPLOYEE", "holiday", "write")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestEnforce_AdminInheritsEmployee(t *testing.T) {
	svc := newTestService(t)

	ok, err := svc.Enforce("ADMIN", "attendance", "create")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Enforce("ADMIN", "presence", "read_all")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Enforce("HR", "employee", "approve")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestEnforce_UnknownRole(t *testing.T) {
	svc := newTestService(t)

	ok, err := svc.Enforce("GUEST", "attendance", "create")
	assert.NoError(t, err)
	assert.False(t, ok)
}
