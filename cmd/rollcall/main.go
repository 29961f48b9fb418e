// Package main implements the rollcall command, a console tracker for
// students, courses and enrollments kept in CSV files.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
