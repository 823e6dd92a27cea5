package commands

import (
	"errors"
	"fmt"
	"time"

	"lockerroom/internal/pkg/errs"
	"lockerroom/internal/pkg/guard"
)

var ErrExpireExtensionsCommandIsNotConstructed = errors.New(
	"ExpireExtensionsCommand must be created via NewExpireExtensionsCommand constructor",
)

// ExpireExtensionsCommand drops extension requests nobody answered within maxAge.
type ExpireExtensionsCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewExpireExtensionsCommand requires a positive maxAge.
func NewExpireExtensionsCommand(maxAge time.Duration) (ExpireExtensionsCommand, error) {
	if maxAge <= 0 {
		return ExpireExtensionsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"maxAge is invalid",
			fmt.Errorf("%s is not greater than 0", maxAge),
		)
	}

	return ExpireExtensionsCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireExtensionsCommand) Validate() error {
	return c.guard.Validate(ErrExpireExtensionsCommandIsNotConstructed)
}

// MaxAge returns how long a request may wait for an answer.
func (c ExpireExtensionsCommand) MaxAge() time.Duration {
	return c.maxAge
}
