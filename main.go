package main

import (
	"os"

	"github.com/sitepanel/sitepanel/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
