package main

import "wallet/cmd"

func main() {
	cmd.Execute()
}
