package main

import "github.com/bgraf/gpxview/cmd"

func main() {
	cmd.Execute()
}
