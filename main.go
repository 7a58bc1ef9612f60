package main

import "github.com/Juyoung35/tents/cmd"

func main() {
	cmd.Execute()
}
