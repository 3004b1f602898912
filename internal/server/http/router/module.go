package router

import "go.uber.org/fx"

// Module builds the gin engine serving the order API.
var Module = fx.Module("http.router", fx.Provide(Setup))
