package main

import "translation-keeper/internal/cli"

func main() {
	cli.Execute()
}
