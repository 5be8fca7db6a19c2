package main

import (
	"os"

	"github.com/harrison/clang-lint/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
