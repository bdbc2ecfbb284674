// Package main содержит точку входа FastFill.
//
// Пакет передаёт версию и дату сборки в CLI-слой:
//
//	go build -ldflags "-X main.buildVersion=3.0.0 -X main.buildDate=2026-10-18" ./cmd/fastfill
package main

import "github.com/IvanChernomyrdin/fastfill/internal/agent/cli"

var (
	// buildVersion содержит версию приложения, передаваемую при сборке.
	buildVersion = "dev"
	// buildDate содержит дату сборки приложения.
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
