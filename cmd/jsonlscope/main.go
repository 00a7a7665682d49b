package main

import "jsonlscope/cmd/jsonlscope/cmd"

func main() {
	cmd.Execute()
}
