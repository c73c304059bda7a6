package usecases

import "errors"

// Domain errors for the keys module.
var (
	// ErrNotOwner is returned when someone other than the owner mints keys.
	ErrNotOwner = errors.New("not authorized to generate keys")

	// ErrInvalidAmount is returned when a batch size is out of range.
	ErrInvalidAmount = errors.New("invalid key amount")

	// ErrRoleNotFound is returned when the premium role does not exist in the guild.
	ErrRoleNotFound = errors.New("premium role not found")

	// ErrRoleForbidden is returned when the bot may not assign the premium role.
	ErrRoleForbidden = errors.New("missing permissions to assign premium role")
)
