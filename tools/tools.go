//go:build tools

package tools

// Tool dependencies pinned in go.mod: goose for running migrations by hand
// and oapi-codegen for regenerating internal/api from api/openapi.yaml.

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
