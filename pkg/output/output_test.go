package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	prev := Writer
	Writer = &buf
	defer func() { Writer = prev }()

	PrintSuccess("saved %s", "out.yaml")
	PrintWarning("skipped %d", 2)
	LogInfo("Loaded form", "form loaded", "path", "scan.yaml")

	text := buf.String()
	assert.Contains(t, text, "saved out.yaml")
	assert.Contains(t, text, "skipped 2")
	assert.Contains(t, text, "Loaded form")
}
