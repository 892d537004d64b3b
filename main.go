package main

import "github.com/yotam4h/photopacker/cmd"

func main() {
	cmd.Execute()
}
