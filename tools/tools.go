// Package tools is the root of the tool tree. Each source file in this
// subtree that registers a router becomes one mountable unit of HTTP
// functionality; subdirectories map to URL path segments. Importing this
// package links every tool package into the binary.
package tools

import (
	_ "github.com/JaimeStill/tool-server/tools/math"
	_ "github.com/JaimeStill/tool-server/tools/text"
)
