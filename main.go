package main

import (
	"github.com/they4kman/heromaze/app"
	"github.com/they4kman/heromaze/cmd"
)

func main() {
	cmd.Execute(app.Main)
}
