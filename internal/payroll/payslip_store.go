package payroll

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:generate mockgen -source=payslip_store.go -destination=mock/payslip_store_mock.go -package=mock

// PayslipStore persists rendered payslips and returns an opaque path
// for later retrieval.
type PayslipStore interface {
	Save(name string, data []byte) (string, error)
	Read(path string) ([]byte, error)
}

type diskPayslipStore struct {
	dir string
}

func NewDiskPayslipStore(dir string) (PayslipStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create payslip dir: %w", err)
	}
	return &diskPayslipStore{dir: dir}, nil
}

func (s *diskPayslipStore) Save(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write payslip: %w", err)
	}
	return path, nil
}

func (s *diskPayslipStore) Read(path string) ([]byte, error) {
	// Refuse paths outside the store directory.
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dirAbs, err := filepath.Abs(s.dir)
	if err != nil {
		return nil, err
	}
	rel, err := filepath.Rel(dirAbs, abs)
	if err != nil || filepath.IsAbs(rel) || strings.HasPrefix(rel, "..") {
		return nil, fmt.Errorf("payslip path outside store: %s", path)
	}
	return os.ReadFile(abs)
}
