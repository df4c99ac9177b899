package main

import "github.com/DudeAlex/project-snapshot-collector/cmd"

func main() {
	cmd.Execute()
}
