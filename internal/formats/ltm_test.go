package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasmovie/parser/internal/result"
)

const ltmConfigSample = `[General]
game_name=celeste
frame_count=3
rerecord_count=25
framerate_num=60
framerate_den=1
elapsed_time_sec=0
`

func TestLtm(t *testing.T) {
	r := ltmParser{}.Parse(tarGzOf(t, map[string]string{
		"config.ini":      ltmConfigSample,
		"inputs":          "|K|\n|K20|\n|K20|M0:0:A:.....|\n",
		"annotations.txt": "route notes",
	}))
	assert.True(t, r.Success)
	assert.Equal(t, result.Linux, r.SystemCode)
	assert.Equal(t, 3, r.Frames)
	assert.Equal(t, 25, r.RerecordCount)
	require.NotNil(t, r.FrameRateOverride)
	assert.InDelta(t, 60.0, *r.FrameRateOverride, 1e-9)
	assertNoWarningsOrErrors(t, r)
}

func TestLtm_Problems(t *testing.T) {
	r := ltmParser{}.Parse(tarGzOf(t, map[string]string{
		"config.ini": "[General]\nframe_count=10\nframerate_num=0\nframerate_den=1\n",
		"inputs":     "|K|\n",
	}))
	assert.True(t, r.Success)
	assert.Equal(t, 1, r.Frames)
	assert.Nil(t, r.FrameRateOverride)
	assert.Equal(t, []string{result.WarnFrameCountMismatch, result.WarnNoRerecords}, r.Warnings)

	r = ltmParser{}.Parse(tarGzOf(t, map[string]string{"inputs": "|K|\n"}))
	assert.False(t, r.Success)
	assert.Equal(t, []string{errMissingConfig}, r.Errors)
	assert.Equal(t, 1, r.Frames)

	r = ltmParser{}.Parse(tarGzOf(t, map[string]string{"config.ini": ltmConfigSample}))
	assert.False(t, r.Success)
	assert.Equal(t, []string{result.ErrMissingInputLog}, r.Errors)
	assert.Empty(t, r.Warnings)
	assert.Equal(t, 25, r.RerecordCount)
}
