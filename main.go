package main

import "github.com/citizenserve/complaint-management/cmd"

func main() {
	cmd.Execute()
}
