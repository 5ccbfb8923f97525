package main

import "github.com/dimanech/aria-grid/internal/cli"

func main() {
	cli.Execute()
}
