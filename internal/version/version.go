package version

import (
	_ "embed" // for go:embed
)

// VERSION holds the server's version
//
//go:embed VERSION
var VERSION string

func init() {
	if VERSION[len(VERSION)-1] == '\n' {
		VERSION = VERSION[:len(VERSION)-1]
	}
}
