package config

import "errors"

// ErrInvalidConfig indicates configuration values that cannot describe a canvas.
var ErrInvalidConfig = errors.New("config: invalid configuration")
