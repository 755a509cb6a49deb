package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestUserError(t *testing.T) {
	cause := errors.New("boom")
	err := NewUserError("계약서를 생성하지 못했습니다", cause)

	var userErr *UserError
	if !errors.As(err, &userErr) {
		t.Fatalf("NewUserError returned %T, want *UserError", err)
	}
	if userErr.UserMessage != "계약서를 생성하지 못했습니다" {
		t.Errorf("UserMessage = %q", userErr.UserMessage)
	}
	if !errors.Is(err, cause) {
		t.Error("UserError does not unwrap to its cause")
	}
	if got := err.Error(); got != "계약서를 생성하지 못했습니다: boom" {
		t.Errorf("Error() = %q", got)
	}

	bare := &UserError{UserMessage: "메시지만"}
	if bare.Error() != "메시지만" {
		t.Errorf("Error() without cause = %q", bare.Error())
	}
}

func TestUserErrorKeepsWrappedSentinels(t *testing.T) {
	inner := fmt.Errorf("%w: clause selection: %w", ErrGenerationFailed, ErrNoClauses)
	err := NewUserError("실패", inner)

	if !errors.Is(err, ErrGenerationFailed) {
		t.Error("ErrGenerationFailed lost through UserError")
	}
	if !errors.Is(err, ErrNoClauses) {
		t.Error("ErrNoClauses lost through UserError")
	}
}
