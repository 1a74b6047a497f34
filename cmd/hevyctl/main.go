package main

import (
	"fmt"
	"os"

	"hevyctl/internal/app"
)

func main() {
	if err := app.New().Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
