package main

import (
	"github.com/sahinbingol85/tez-online-appendix/windows"
)

func main() {
	windows.CreateMainWindow()
}
