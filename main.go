package main

import "github.com/fubueng/gostringer/cmd"

func main() {
	cmd.Execute()
}
