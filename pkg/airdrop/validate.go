package airdrop

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/chainsafe/airdrop-registry/pkg/auth"
)

// ErrNoSourceAddress is returned when a registration names neither source address
var ErrNoSourceAddress = errors.New("either address must be provided")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("ss58", func(fl validator.FieldLevel) bool {
			return auth.ValidateSS58Address(fl.Field().String())
		})
		_ = validate.RegisterValidation("evm_addr", func(fl validator.FieldLevel) bool {
			return auth.ValidateEVMAddress(fl.Field().String())
		})
	})
	return validate
}

// Validate checks the request shape. Business rules (eligibility, duplicates,
// signatures, destination) are left to the registration engine.
func (r *RegisterRequest) Validate() error {
	if r.AvailAddress == "" && r.EVMAddress == "" {
		return ErrNoSourceAddress
	}
	if err := requestValidator().Struct(r); err != nil {
		return describeValidation(err)
	}
	return nil
}

// ValidateAddress checks that address is well-formed for chain
func ValidateAddress(chain Chain, address string) error {
	if address == "" {
		return errors.New("address is required")
	}
	tag := "ss58"
	if chain == ChainEVM {
		tag = "evm_addr"
	}
	if err := requestValidator().Var(address, tag); err != nil {
		return fmt.Errorf("invalid %s address", chain)
	}
	return nil
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "ss58":
			msgs = append(msgs, fmt.Sprintf("%s is not a valid SS58 address", fe.Field()))
		case "evm_addr":
			msgs = append(msgs, fmt.Sprintf("%s is not a valid EVM address", fe.Field()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must be an ISO-8601 timestamp", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
