// cmd/primerpioneer/main.go
package main

import "github.com/Mochibw/PrimerPioneer/internal/cmd"

func main() {
	cmd.Execute()
}
