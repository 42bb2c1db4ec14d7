package errors

import "fmt"

// EmptyNameMessage is shown inline under the input field.
const EmptyNameMessage = "Please enter a name."

var (
	ErrEmptyName      = fmt.Errorf("empty name")
	ErrUnknownCommand = fmt.Errorf("unknown command")
	ErrInvalidIndex   = fmt.Errorf("invalid row number")
	ErrMissingArgs    = fmt.Errorf("missing argument")
)
