package errors

import (
	"errors"

	"github.com/cloudcopper/cardlist/lib"
)

const ErrInvalidArgument = lib.Error("invalid argument")
const ErrDependencyUnavailable = lib.Error("dependency unavailable")
const ErrIncorrectCardID = lib.Error("incorrect card id")

var Is = errors.Is
