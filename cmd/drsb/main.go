package main

import "github.com/LoganBrinsmead/DRSB/cli"

func main() {
	cli.Main()
}
