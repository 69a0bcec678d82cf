// Package main is the entry point for the gridscout CLI tool, which fetches
// GRID esports match data and computes team scouting statistics.
package main

import "github.com/pable/gridscout/cmd"

func main() {
	cmd.Execute()
}
