package validation

import "go.uber.org/fx"

// Module provides the request validator.
var Module = fx.Provide(New)
