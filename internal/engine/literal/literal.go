// Package literal renders payloads as C byte-array declarations and assembles the header.
package literal

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/assetpack/internal/core/domain"
)

// BytesPerRow is the number of array elements on each line.
const BytesPerRow = 16

const indent = "    "

// Serialize renders c as a byte-array declaration followed by its length constant.
// attribute is placed after the declarator when non-empty.
func Serialize(c domain.EmbeddedConstant, attribute string) string {
	var b strings.Builder
	b.Grow(len(c.Payload)*6 + 128)
	writeConstant(&b, c, attribute)
	return b.String()
}

func writeConstant(b *strings.Builder, c domain.EmbeddedConstant, attribute string) {
	b.WriteString("const uint8_t ")
	b.WriteString(c.Name)
	b.WriteString("[]")
	if attribute != "" {
		b.WriteByte(' ')
		b.WriteString(attribute)
	}
	b.WriteString(" = {\n")

	for start := 0; start < len(c.Payload); start += BytesPerRow {
		end := min(start+BytesPerRow, len(c.Payload))
		b.WriteString(indent)
		for i, v := range c.Payload[start:end] {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "0x%02x", v)
		}
		if end < len(c.Payload) {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}

	b.WriteString("};\n")
	b.WriteString("const size_t ")
	b.WriteString(c.LenName())
	b.WriteString(" = ")
	b.WriteString(strconv.Itoa(c.Len()))
	b.WriteString(";\n")
}

type block struct {
	path     string
	sizes    domain.StageSizes
	constant domain.EmbeddedConstant
}

// Header accumulates embedded constants for one artifact.
type Header struct {
	source    string
	guard     string
	includes  []string
	attribute string
	blocks    []block
}

// NewHeader creates a Header for the artifact at output generated from source.
func NewHeader(source, output string, includes []string, attribute string) *Header {
	return &Header{
		source:    filepath.ToSlash(source),
		guard:     domain.GuardName(output),
		includes:  includes,
		attribute: attribute,
	}
}

// Add appends a constant. Constants are emitted in the order they are added.
func (h *Header) Add(path string, sizes domain.StageSizes, c domain.EmbeddedConstant) {
	h.blocks = append(h.blocks, block{path: path, sizes: sizes, constant: c})
}

// Len returns the number of constants added.
func (h *Header) Len() int {
	return len(h.blocks)
}

// Bytes renders the complete header.
func (h *Header) Bytes() []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "// Generated by assetpack from %s. Do not edit by hand.\n", h.source)
	b.WriteString("// Run `assetpack generate` to regenerate.\n\n")
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", h.guard, h.guard)

	if len(h.includes) > 0 {
		for _, inc := range h.includes {
			fmt.Fprintf(&b, "#include %s\n", includeTarget(inc))
		}
		b.WriteByte('\n')
	}

	for _, blk := range h.blocks {
		fmt.Fprintf(&b, "// %s (%d -> %d -> %d bytes)\n",
			blk.path, blk.sizes.Original, blk.sizes.Transformed, blk.sizes.Compressed)
		writeConstant(&b, blk.constant, h.attribute)
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "#endif // %s\n", h.guard)
	return []byte(b.String())
}

// includeTarget wraps a bare header name in angle brackets.
func includeTarget(inc string) string {
	if strings.HasPrefix(inc, "<") || strings.HasPrefix(inc, `"`) {
		return inc
	}
	return "<" + inc + ">"
}
