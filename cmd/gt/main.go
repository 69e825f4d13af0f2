package main

import "goaltrack/cmd/gt/root"

func main() {
	root.Execute()
}
