package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/liverdesk/internal/validation"
)

// PromptCredentials asks for email and password. When confirm is set the
// password is asked twice and checked against the password rules.
func PromptCredentials(title string, confirm bool) (email, password string, err error) {
	var again string

	fields := []huh.Field{
		huh.NewNote().Title(title),
		huh.NewInput().Title("Email:").Value(&email).Validate(validation.ValidateEmail),
	}

	pw := huh.NewInput().Title("Password:").EchoMode(huh.EchoModePassword).Value(&password)
	if confirm {
		pw.Validate(validation.ValidatePassword)
	}
	fields = append(fields, pw)

	if confirm {
		fields = append(fields, huh.NewInput().
			Title("Repeat Password:").
			EchoMode(huh.EchoModePassword).
			Value(&again).
			Validate(func(s string) error {
				if s != password {
					return validation.ErrPasswordMismatch
				}
				return nil
			}))
	}

	err = huh.NewForm(huh.NewGroup(fields...)).Run()
	return email, password, err
}
