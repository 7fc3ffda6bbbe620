package main

import "content-graph/cmd/linkctl/cmd"

func main() {
	cmd.Execute()
}
