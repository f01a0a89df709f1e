package report

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/tasmovie/parser/internal/result"
	"github.com/zclconf/go-cty/cty"
)

// MovieBlock renders a parse result as a movie "<name>" { } block.
func MovieBlock(name string, r *result.Result) *hclwrite.Block {
	block := hclwrite.NewBlock("movie", []string{name})
	body := block.Body()
	SetAttributeBool(body, "success", r.Success)
	SetAttributeStr(body, "format", r.FileExtension)
	SetAttributeStr(body, "system", string(r.SystemCode))
	SetAttributeStr(body, "region", string(r.Region))
	SetAttributeInt(body, "frames", r.Frames)
	SetAttributeInt(body, "rerecords", r.RerecordCount)
	SetAttributeStr(body, "start_type", string(r.StartType))
	if r.FrameRateOverride != nil {
		body.SetAttributeValue("frame_rate", cty.NumberFloatVal(*r.FrameRateOverride))
	}
	SetAttributeList(body, "errors", r.Errors)
	SetAttributeList(body, "warnings", r.Warnings)
	return block
}

// UnsupportedBlock renders a file whose format could not be resolved.
func UnsupportedBlock(name string, err error) *hclwrite.Block {
	block := hclwrite.NewBlock("unsupported", []string{name})
	SetAttributeStr(block.Body(), "error", err.Error())
	return block
}

// SetAttributeStr sets a string attribute on a block body; empty values are omitted.
func SetAttributeStr(body *hclwrite.Body, name, value string) {
	if value != "" {
		body.SetAttributeValue(name, cty.StringVal(value))
	}
}

// SetAttributeBool sets a bool attribute.
func SetAttributeBool(body *hclwrite.Body, name string, value bool) {
	body.SetAttributeValue(name, cty.BoolVal(value))
}

// SetAttributeInt sets an int attribute.
func SetAttributeInt(body *hclwrite.Body, name string, value int) {
	body.SetAttributeValue(name, cty.NumberIntVal(int64(value)))
}

// SetAttributeList sets a list(string) attribute; empty lists are omitted.
func SetAttributeList(body *hclwrite.Body, name string, values []string) {
	if len(values) == 0 {
		return
	}
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	body.SetAttributeValue(name, cty.ListVal(vals))
}

// BlockToBytes formats a block and returns its bytes (with newline).
func BlockToBytes(block *hclwrite.Block) []byte {
	f := hclwrite.NewEmptyFile()
	f.Body().AppendBlock(block)
	return f.Bytes()
}
