// Package testutil provides mocks and fixtures for package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/GriffinCanCode/fsutil/internal/shared/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockWarner is a mock implementation of logging.Warner for testing.
type MockWarner struct {
	mock.Mock
}

// Warn mocks the Warn method. Fields are not matched.
func (m *MockWarner) Warn(msg string, fields ...zap.Field) {
	m.Called(msg)
}

// NewMockWarner creates a mock warner that accepts any message.
func NewMockWarner(t *testing.T) *MockWarner {
	t.Helper()
	m := new(MockWarner)
	m.On("Warn", mock.Anything).Maybe()
	return m
}

// MockRemover is a mock implementation of filesystem.Remover that records
// the order of calls. With Passthrough set, calls whose expectation returns
// nil are forwarded to os.Remove.
type MockRemover struct {
	mock.Mock
	Passthrough bool

	mu    sync.Mutex
	calls []string
}

// Remove mocks the Remove method.
func (m *MockRemover) Remove(name string) error {
	m.mu.Lock()
	m.calls = append(m.calls, name)
	m.mu.Unlock()

	args := m.Called(name)
	if err := args.Error(0); err != nil {
		return err
	}
	if m.Passthrough {
		return os.Remove(name)
	}
	return nil
}

// Calls returns the paths passed to Remove, in order.
func (m *MockRemover) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// NewMockRemover creates a mock remover. Expectations must be set by the
// caller; passthrough controls whether successful calls really delete.
func NewMockRemover(t *testing.T, passthrough bool) *MockRemover {
	t.Helper()
	return &MockRemover{Passthrough: passthrough}
}

// BuildTree creates files under a fresh temp directory and returns its path.
// Keys are slash separated relative paths; a key ending in "/" creates an
// empty directory.
func BuildTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// Symlink creates a symlink at link pointing to target, skipping the test
// when the platform refuses.
func Symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}

// AssertSuccess is a helper to assert a successful result.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if !result.OK() {
		msg := ""
		if result.Error != nil {
			msg = *result.Error
		}
		t.Fatalf("Expected success, got %s: %s", result.Status, msg)
	}
}

// AssertError is a helper to assert a failed or not-applicable result.
func AssertError(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if result.OK() {
		t.Fatal("Expected error, got success")
	}
	if result.Error == nil {
		t.Fatal("Expected error message, got nil")
	}
}

// AssertDataField is a helper to assert a data field exists and matches expected value.
func AssertDataField(t *testing.T, result *types.Result, field string, expected interface{}) {
	t.Helper()
	AssertSuccess(t, result)

	if result.Data == nil {
		t.Fatal("Result data is nil")
	}

	actual, ok := result.Data[field]
	if !ok {
		t.Fatalf("Field %s not found in result data", field)
	}

	if actual != expected {
		t.Fatalf("Field %s: expected %v, got %v", field, expected, actual)
	}
}
