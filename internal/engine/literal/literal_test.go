package literal_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/assetpack/internal/engine/literal"
)

func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestSerialize_Golden(t *testing.T) {
	tests := []struct {
		name      string
		constant  domain.EmbeddedConstant
		attribute string
	}{
		{
			name:      "serialize_rows",
			constant:  domain.EmbeddedConstant{Name: "JS_MAIN_GZ", Payload: sequence(21)},
			attribute: domain.DefaultAttribute,
		},
		{
			name:     "serialize_exact_row_no_attribute",
			constant: domain.EmbeddedConstant{Name: "CSS_STYLE_GZ", Payload: sequence(16)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goldie.New(t)
			g.Assert(t, tt.name, []byte(literal.Serialize(tt.constant, tt.attribute)))
		})
	}
}

// TestSerialize_ParsesBack reads the emitted literal back and compares it to the payload.
func TestSerialize_ParsesBack(t *testing.T) {
	t.Parallel()

	payload := []byte{0x1f, 0x8b, 0x08, 0x00, 0xff, 0x7f, 0x80, 0x01}
	for range 5 {
		payload = append(payload, payload...)
	}
	c := domain.EmbeddedConstant{Name: "HTML_INDEX_GZ", Payload: payload}
	out := literal.Serialize(c, "PROGMEM")

	var parsed []byte
	for _, hex := range regexp.MustCompile(`0x([0-9a-f]{2})`).FindAllStringSubmatch(out, -1) {
		v, err := strconv.ParseUint(hex[1], 16, 8)
		require.NoError(t, err)
		parsed = append(parsed, byte(v))
	}
	assert.Equal(t, payload, parsed)
	assert.Contains(t, out, "const size_t HTML_INDEX_GZ_LEN = "+strconv.Itoa(len(payload))+";")

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, strings.Count(line, "0x"), literal.BytesPerRow)
	}
}

func TestHeader_Golden(t *testing.T) {
	h := literal.NewHeader("src/webui_src", "src/webui_gen/web_content.h", []string{"Arduino.h", `"config.h"`}, "PROGMEM")
	h.Add("index.html", domain.StageSizes{Original: 1200, Transformed: 900, Compressed: 18},
		domain.EmbeddedConstant{Name: "HTML_INDEX_GZ", Payload: sequence(18)})
	h.Add("lib/crash-log.js", domain.StageSizes{Original: 40, Transformed: 30, Compressed: 4},
		domain.EmbeddedConstant{Name: "JS_LIB_CRASH_LOG_GZ", Payload: []byte{0xde, 0xad, 0xbe, 0xef}})

	assert.Equal(t, 2, h.Len())
	g := goldie.New(t)
	g.Assert(t, "header_firmware", h.Bytes())
}

func TestHeader_NoIncludesNoAssets(t *testing.T) {
	t.Parallel()

	h := literal.NewHeader("web", "out/assets.h", nil, "")
	want := "// Generated by assetpack from web. Do not edit by hand.\n" +
		"// Run `assetpack generate` to regenerate.\n\n" +
		"#ifndef ASSETS_H\n#define ASSETS_H\n\n" +
		"#endif // ASSETS_H\n"
	assert.Equal(t, want, string(h.Bytes()))
}
