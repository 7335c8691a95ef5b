package main

import "github.com/juliaos/evm-signer/cmd"

func main() {
	cmd.Execute()
}
