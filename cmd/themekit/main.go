// Command themekit lists, renders and previews color themes.
package main

import (
	"os"

	"github.com/opencode-ai/themekit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
