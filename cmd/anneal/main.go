// Command anneal solves run files and serves the annealing HTTP API.
package main

func main() {
	Execute()
}
