package main

import (
	"os"

	"github.com/UpstateNate/AstroMediaServer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
