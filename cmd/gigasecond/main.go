// Command gigasecond shows a live countdown to gigasecond milestones.
package main

func main() {
	Execute()
}
