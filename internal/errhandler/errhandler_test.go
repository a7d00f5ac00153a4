package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
)

func TestIsInterrupt(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{terminal.InterruptErr, true},
		{fmt.Errorf("input cancelled: %w", terminal.InterruptErr), true},
		{huh.ErrUserAborted, true},
		{fmt.Errorf("wrapped: %w", huh.ErrUserAborted), true},
		{errors.New("disk full"), false},
	}
	for _, tt := range tests {
		if got := IsInterrupt(tt.err); got != tt.want {
			t.Errorf("IsInterrupt(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestMessage(t *testing.T) {
	if got := Message(errors.New("failed to load sales")); got != "Failed to load sales" {
		t.Errorf("Message = %q", got)
	}
	if got := Message(errors.New("ümlaut first")); got != "Ümlaut first" {
		t.Errorf("Message = %q", got)
	}
}
