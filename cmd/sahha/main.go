package main

import "github.com/zakariamou/sahha/internal/cli"

func main() {
	cli.Execute()
}
