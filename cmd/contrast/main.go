package main

import "github.com/aalvaropc/wcagcontrast/internal/cli"

func main() {
	cli.Execute()
}
