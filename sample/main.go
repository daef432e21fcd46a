// Command sample runs the example solutions in ./days.
package main

import (
	"github.com/zjrosen/aoc"
	"github.com/zjrosen/aoc/sample/days"
)

var version = "dev"

func main() {
	aoc.Main(aoc.Project{Year: 2022, Version: version, Author: "zjrosen"}, days.Days(), days.Inputs())
}
