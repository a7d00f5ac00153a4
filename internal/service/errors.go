package service

import (
	"errors"
	"fmt"

	"github.com/hance08/liverdesk/internal/validation"
)

var (
	ErrUnknownLiver    = fmt.Errorf("%w: liver name does not match any registered liver", validation.ErrInvalidInput)
	ErrAuthentication  = errors.New("authentication failed: wrong email or password")
	ErrNotSignedIn     = errors.New("not signed in, run 'liverdesk login' first")
	ErrUndoDisabled    = errors.New("undo is disabled for this view")
	ErrBulkDisabled    = errors.New("bulk marking is disabled for this view")
	ErrDeleteForbidden = errors.New("deleting this sale is not allowed by sales.delete_policy")
	ErrViewNotLoaded   = errors.New("view has not been loaded")
)
