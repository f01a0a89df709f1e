package report

import (
	"bytes"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

// Builder collects rendered blocks into a single HCL document.
type Builder struct {
	blocks [][]byte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a block; nil blocks are ignored.
func (b *Builder) Add(block *hclwrite.Block) {
	if block == nil {
		return
	}
	b.blocks = append(b.blocks, BlockToBytes(block))
}

// Len returns the number of blocks added.
func (b *Builder) Len() int { return len(b.blocks) }

// Build returns the document, blocks separated by a blank line.
func (b *Builder) Build() []byte {
	var buf bytes.Buffer
	for i, blk := range b.blocks {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.Write(blk)
	}
	return buf.Bytes()
}
