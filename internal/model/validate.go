package model

import "github.com/go-playground/validator/v10"

// validator caches struct metadata, so one instance is shared by all inputs.
var validate = validator.New(validator.WithRequiredStructEnabled())
