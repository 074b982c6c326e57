// Command verinfo inspects the VS_VERSIONINFO resource of Windows PE images.
package main

func main() {
	execute()
}
