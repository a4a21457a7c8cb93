package main

import "github.com/stakestar/avaxtracker/cli"

var (
	AppName = "AVAX Validator Tracker"
	Version = "latest"
)

func main() {
	cli.Execute(AppName, Version)
}
