package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownRoomType, "unknown room type: %s", "garage")

	if err.Code != ErrCodeUnknownRoomType {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnknownRoomType)
	}
	if err.Message != "unknown room type: garage" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}

	want := "UNKNOWN_ROOM_TYPE: unknown room type: garage"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("no such file")
	err := Wrap(ErrCodeInvalidPlanFile, cause, "load %s", "plan.toml")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	want := "INVALID_PLAN_FILE: load plan.toml: no such file"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"MatchingCode", New(ErrCodeUnknownRoomType, "x"), ErrCodeUnknownRoomType, true},
		{"DifferentCode", New(ErrCodeUnknownRoomType, "x"), ErrCodeNotFound, false},
		{"WrappedInStdError", fmt.Errorf("outer: %w", New(ErrCodeSessionExpired, "x")), ErrCodeSessionExpired, true},
		{"PlainError", stderrors.New("plain"), ErrCodeInternal, false},
		{"Nil", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeRender, "boom")); got != ErrCodeRender {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeRender)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeNotFound, "plan missing")); got != "plan missing" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage = %q", got)
	}
}
