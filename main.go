package main

import "github.com/jsphweid/missingtone/cmd"

func main() {
	cmd.Execute()
}
