package main

import "github.com/hlsfab/floorplan/cmd/floorplan/cmd"

func main() {
	cmd.Execute()
}
