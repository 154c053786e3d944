package testutil

import (
	"fmt"

	"github.com/hbjs97/aictx/internal/prompt"
)

// MockFormRunner returns pre-configured form results for testing.
type MockFormRunner struct {
	// ProfileResult is returned by RunProfileForm.
	ProfileResult *prompt.ProfileInput

	// ProfileErr, when non-nil, is returned by RunProfileForm.
	ProfileErr error

	// ConfirmResult is returned by RunConfirm.
	ConfirmResult bool

	// ConfirmErr, when non-nil, is returned by RunConfirm.
	ConfirmErr error

	// FormCalls counts RunProfileForm invocations.
	FormCalls int

	// ConfirmCalls records RunConfirm messages in order.
	ConfirmCalls []string
}

var _ prompt.FormRunner = (*MockFormRunner)(nil)

// RunProfileForm returns the configured result.
func (m *MockFormRunner) RunProfileForm(defaults *prompt.ProfileInput, typeLocked bool) (*prompt.ProfileInput, error) {
	m.FormCalls++
	if m.ProfileErr != nil {
		return nil, m.ProfileErr
	}
	if m.ProfileResult == nil {
		return nil, fmt.Errorf("MockFormRunner: no profile result configured")
	}
	return m.ProfileResult, nil
}

// RunConfirm returns the configured result.
func (m *MockFormRunner) RunConfirm(message string) (bool, error) {
	m.ConfirmCalls = append(m.ConfirmCalls, message)
	if m.ConfirmErr != nil {
		return false, m.ConfirmErr
	}
	return m.ConfirmResult, nil
}
