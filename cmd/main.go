package main

import "github.com/consensys/scalarff/pkg/cmd"

func main() {
	cmd.Execute()
}
