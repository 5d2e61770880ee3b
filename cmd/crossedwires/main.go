package main

import "github.com/marshallmcdonnell/advent-of-code-2019/internal/cli"

func main() {
	cli.Execute()
}
