package main

import "objmask-workaround/cmd"

func main() {
	cmd.Execute()
}
