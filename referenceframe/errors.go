package referenceframe

import (
	"github.com/pkg/errors"
)

var (
	// ErrIndexOutOfRange is returned when a joint index does not name a joint in the chain.
	ErrIndexOutOfRange = errors.New("joint index out of range")

	// ErrInvalidChainConfiguration is returned when a chain cannot be built from the given description.
	ErrInvalidChainConfiguration = errors.New("invalid chain configuration")

	// ErrIncorrectDoF is returned when an angle vector does not have one value per joint.
	ErrIncorrectDoF = errors.New("incorrect number of joint values")

	// ErrNoChainInformation is used when a chain description is empty.
	ErrNoChainInformation = errors.New("no chain information")
)

// NewIndexOutOfRangeError returns an error indicating that index does not address one of dof joints.
func NewIndexOutOfRangeError(index, dof int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d with %d joints", index, dof)
}

// NewIncorrectDoFError returns an error indicating that the number of given values does not match the chain.
func NewIncorrectDoFError(actual, expected int) error {
	return errors.Wrapf(ErrIncorrectDoF, "got %d values, expected %d", actual, expected)
}

// NewInvalidChainConfigurationError wraps ErrInvalidChainConfiguration with the reason a chain was rejected.
func NewInvalidChainConfigurationError(reason string) error {
	return errors.Wrap(ErrInvalidChainConfiguration, reason)
}

// NewInvalidLinkLengthError is used when a link length is negative or not a finite number.
func NewInvalidLinkLengthError(index int, length float64) error {
	return errors.Wrapf(ErrInvalidChainConfiguration, "link %d has invalid length %v", index, length)
}

// NewInvalidLimitError is used when a joint limit has its minimum above its maximum.
func NewInvalidLimitError(index int, limit Limit) error {
	return errors.Wrapf(ErrInvalidChainConfiguration, "joint %d has invalid limit [%v, %v]", index, limit.Min, limit.Max)
}
