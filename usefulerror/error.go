package usefulerror

import (
	"errors"
	"strings"
)

// UsefulError is an error that carries enough context to be shown to the
// operator as-is: a human message, a hint on how to fix it and a stable code.
type UsefulError interface {
	// Error keeps compatibility with the standard error interface.
	Error() string

	// HumanError returns the message shown to the operator.
	HumanError() string

	// Help returns guidance specific to the failure.
	Help() string

	// AdditionalHelp returns tooling hints such as flags to try.
	AdditionalHelp() string

	// Code identifies the error kind for logs and the event record.
	Code() string
}

type usefulErrorBuilder struct {
	originalError  error
	humanError     string
	help           string
	additionalHelp string
	code           string
	msg            string
}

var _ UsefulError = (*usefulErrorBuilder)(nil)

func Useful() *usefulErrorBuilder {
	return &usefulErrorBuilder{}
}

func (b *usefulErrorBuilder) Wrap(originalError error) *usefulErrorBuilder {
	b.originalError = originalError
	return b
}

// WithHumanError sets the operator facing message.
func (b *usefulErrorBuilder) WithHumanError(humanError string) *usefulErrorBuilder {
	b.humanError = humanError
	return b
}

// WithHelp sets guidance for the operator.
func (b *usefulErrorBuilder) WithHelp(help string) *usefulErrorBuilder {
	b.help = help
	return b
}

// WithCode sets the error kind.
func (b *usefulErrorBuilder) WithCode(code string) *usefulErrorBuilder {
	b.code = code
	return b
}

// Msg sets the technical message used by Error when nothing is wrapped.
func (b *usefulErrorBuilder) Msg(msg string) *usefulErrorBuilder {
	b.msg = msg
	return b
}

// WithAdditionalHelp sets tooling hints.
func (b *usefulErrorBuilder) WithAdditionalHelp(additionalHelp string) *usefulErrorBuilder {
	b.additionalHelp = additionalHelp
	return b
}

func (b *usefulErrorBuilder) Error() string {
	if b.originalError != nil {
		return b.originalError.Error()
	}

	if b.msg == "" {
		return "unknown error"
	}

	msgParts := []string{}
	if b.code != "" {
		msgParts = append(msgParts, b.code)
	}

	msgParts = append(msgParts, b.msg)
	return strings.Join(msgParts, ": ")
}

// Unwrap exposes the wrapped error so errors.Is and errors.As see through
// the builder.
func (b *usefulErrorBuilder) Unwrap() error {
	return b.originalError
}

func (b *usefulErrorBuilder) HumanError() string {
	if b.humanError == "" {
		return "An error occurred, but no human-readable message is available."
	}

	return b.humanError
}

func (b *usefulErrorBuilder) Help() string {
	if b.help == "" {
		return "No additional help is available for this error."
	}

	return b.help
}

func (b *usefulErrorBuilder) Code() string {
	if b.code == "" {
		return "unknown"
	}

	return b.code
}

func (b *usefulErrorBuilder) AdditionalHelp() string {
	if b.additionalHelp == "" {
		return "No additional help is available for this error."
	}

	return b.additionalHelp
}

// AsUsefulError finds the first UsefulError in the chain of err.
func AsUsefulError(err error) (UsefulError, bool) {
	if err == nil {
		return nil, false
	}

	var usefulErr *usefulErrorBuilder
	if errors.As(err, &usefulErr) {
		return usefulErr, true
	}

	var iface UsefulError
	if errors.As(err, &iface) {
		return iface, true
	}

	return nil, false
}

// HasCode reports whether err carries a UsefulError with the given code
// anywhere in its chain.
func HasCode(err error, code string) bool {
	for err != nil {
		if ue, ok := err.(UsefulError); ok && ue.Code() == code {
			return true
		}

		err = errors.Unwrap(err)
	}

	return false
}
