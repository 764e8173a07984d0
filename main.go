package main

import (
	"github.com/richie-woo-berkeley/Sheets-C6-Multiplatform/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
