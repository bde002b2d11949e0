//go:build tools

package main

// Fija la versión de swag usada para regenerar docs/swagger.json
// (swag init -g cmd/api/main.go -o docs).
import (
	_ "github.com/swaggo/swag"
)
