// Phytiming is a bench console for inspecting SCSI bus timing.
//
// Each input line is one command, e.g.
//
//	sync 25
//	profile v6 read
package main

import (
	"bufio"
	"os"
)

func main() {
	println("Info: phytiming ready, type 'help'")
	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		if err := eval(in.Text(), os.Stdout); err != nil {
			if err == errQuit {
				return
			}
			println("Error:", err.Error())
		}
	}
}
