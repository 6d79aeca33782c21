package main

import "cookie-importer/cmd"

func main() {
	cmd.Execute()
}
