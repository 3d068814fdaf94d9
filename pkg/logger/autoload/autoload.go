// Package autoload initializes the global zerolog logger from LOGGER_* env
// variables on import. Blank-import it from main.
package autoload

import (
	configx "github.com/kittipos/shoptalk/pkg/config"
	logx "github.com/kittipos/shoptalk/pkg/logger"
)

func init() {
	cfg := configx.MustNew[logx.Config]("LOGGER")
	logx.Init(*cfg)
}
