package utils

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// HighlightContent prints file content to stdout with terminal syntax
// highlighting for the given language tag. Falls back to plain output
// when the highlighter rejects the input.
func HighlightContent(content string, language string, theme string) error {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, content, chromaLexer(language), "terminal256", theme); err != nil {
		fmt.Print(content)
		return nil
	}
	_, err := os.Stdout.Write(buf.Bytes())
	return err
}

// chromaLexer maps the snapshot language tags onto chroma lexer names.
func chromaLexer(language string) string {
	switch strings.ToLower(language) {
	case "tsx":
		return "typescript"
	case "jsx":
		return "javascript"
	case "properties":
		return "ini"
	case "other", "unknown", "":
		return "plaintext"
	default:
		return strings.ToLower(language)
	}
}
