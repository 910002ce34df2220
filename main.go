package main

import "github.com/markuseichhorn92-netizen/fitinn-cli/cmd/fitinn"

func main() {
	fitinn.Execute()
}
