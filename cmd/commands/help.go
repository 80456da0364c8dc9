package commands

import "fmt"

const help = `photoshare is a photo-sharing API server.

Usage:
  photoshare <command> [arguments]

Commands:
  run <config_path>     start the HTTP server and the orphan reclaimer
  sweep <config_path>   delete stored images that no post or user references
  help                  show this help
  version               print the version
`

func HandleHelp(_ []string) {
	fmt.Print(help) //nolint
}
