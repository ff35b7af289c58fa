package main

import (
	"fmt"
	"os"

	"gestion/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gestion:", err)
		os.Exit(1)
	}
}
