package main

import "github.com/cameronsjo/maniparse/internal/cmd"

func main() {
	cmd.Execute()
}
