package main

import "notedock/cmd/notedock-cli/cmd"

func main() {
	cmd.Execute()
}
