package main

import "github.com/carson-networks/budget-insights/internal/cli"

func main() {
	cli.Execute()
}
