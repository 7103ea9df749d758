package embeddata

import (
	"embed"
	"io/fs"
)

//go:embed help.md table.yaml tips.json
var embeddedFS embed.FS

// FS returns the embedded filesystem with access to help.md, table.yaml and tips.json.
func FS() fs.FS {
	return embeddedFS
}

// ReadHelpMD returns the contents of help.md.
func ReadHelpMD() ([]byte, error) {
	return embeddedFS.ReadFile("help.md")
}

// ReadTableYAML returns the built-in table config.
func ReadTableYAML() ([]byte, error) {
	return embeddedFS.ReadFile("table.yaml")
}

// ReadTips returns the contents of tips.json.
func ReadTips() ([]byte, error) {
	return embeddedFS.ReadFile("tips.json")
}
