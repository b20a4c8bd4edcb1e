package main

import (
	"fmt"
	"os"

	"github.com/kn327/NetworkLocationInfo/internal/cli"
	"github.com/kn327/NetworkLocationInfo/pkg/display/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
