package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultYAML []byte
