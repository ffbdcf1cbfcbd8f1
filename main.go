package main

import (
	"os"

	"github.com/kubelouislu/sre-portfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
