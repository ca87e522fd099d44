package main

import "github.com/ValentinKolb/rbundle/cmd"

func main() {
	cmd.Execute()
}
