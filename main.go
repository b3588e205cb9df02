package main

import "account-list/cmd"

func main() {
	cmd.Execute()
}
