package main

import "cadastro-rural/cmd"

func main() {
	cmd.Execute()
}
