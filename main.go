// Propsmith rewrites and audits attributes of JSX/TSX components.
package main

import "github.com/red-newt/propsmith/cmd"

func main() {
	cmd.Execute()
}
