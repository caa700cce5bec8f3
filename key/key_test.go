package key

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixkit/pixkit/palette"
)

func testPalette(t *testing.T, entries int) *palette.Palette {
	t.Helper()

	var sb strings.Builder
	sb.WriteString("{")
	for i := 0; i < entries; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `"%02d": {"name": "Color %02d", "hex": "%06x"}`, i, i, i*0x028f5c)
	}
	sb.WriteString("}")

	p, err := palette.Decode(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return p
}

// contentStreams inflates every Flate-compressed stream in a PDF and
// returns the concatenated page content.
func contentStreams(t *testing.T, b []byte) string {
	t.Helper()

	var sb strings.Builder
	for {
		i := bytes.Index(b, []byte("stream"))
		if i < 0 {
			break
		}
		b = b[i+len("stream"):]
		b = bytes.TrimPrefix(b, []byte("\r\n"))
		b = bytes.TrimPrefix(b, []byte("\n"))

		j := bytes.Index(b, []byte("endstream"))
		if j < 0 {
			break
		}

		if r, err := zlib.NewReader(bytes.NewReader(b[:j])); err == nil {
			inflated, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			sb.Write(inflated)
		}

		b = b[j+len("endstream"):]
	}

	return sb.String()
}

func TestGenerate_SwatchPerEntry(t *testing.T) {
	p := testPalette(t, 12)

	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, p))

	content := contentStreams(t, buf.Bytes())

	// One fill-and-stroke rectangle per entry
	assert.Equal(t, p.Len(), strings.Count(content, " re B"))

	// Every entry labeled with its code and name
	for _, entry := range p.Entries() {
		assert.Contains(t, content, fmt.Sprintf("(%s  %s) Tj", entry.Code, entry.Name))
	}
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, testPalette(t, 12)))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestGenerate_ManyPages(t *testing.T) {
	// 100 entries overflow a single page; the grid must spill over
	// rather than error out
	var single, many bytes.Buffer
	require.NoError(t, Generate(&single, testPalette(t, 3)))
	require.NoError(t, Generate(&many, testPalette(t, 100)))

	assert.Greater(t, many.Len(), single.Len())

	// No entry may fall off a page boundary
	assert.Equal(t, 100, strings.Count(contentStreams(t, many.Bytes()), " re B"))
}

func TestGenerate_Deterministic(t *testing.T) {
	p := testPalette(t, 20)

	var a, b bytes.Buffer
	require.NoError(t, Generate(&a, p))
	require.NoError(t, Generate(&b, p))

	// Creation timestamps vary; page content must not
	assert.Equal(t, a.Len(), b.Len())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, WriteFile(path, testPalette(t, 8)))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestWriteFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "sub", Filename)
	require.Error(t, WriteFile(path, testPalette(t, 8)))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
