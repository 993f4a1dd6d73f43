package main

import "github.com/hurou927/table-schema-gen/cmd"

func main() {
	cmd.Execute()
}
