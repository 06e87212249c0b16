// Command educli drives the class-management backend from a terminal.
//
//	educli --base-url http://localhost:8080/api login --username alice
//	educli classes list
//	educli files upload --class 3 ./notes.pdf
package main

import (
	"fmt"
	"os"
)

func main() {
	app := newApp(newEnv(os.Stdin, os.Stdout, os.Stderr))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "educli: %v\n", err)
		os.Exit(1)
	}
}
