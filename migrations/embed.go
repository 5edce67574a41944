// Package migrations embeds all SQL migration files so the binary is self-contained
// and the schema can be applied from any working directory.
package migrations

import "embed"

// FS contains all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS

// Schema returns the initial schema for the given driver ("sqlite" or "postgres").
func Schema(driver string) (string, error) {
	b, err := FS.ReadFile("001_initial_schema." + driver + ".sql")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
