package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx assembles a minimal DOCX container around the given document XML.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestText_DocxParagraphsJoinedWithNewlines(t *testing.T) {
	docXML := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Software Engineer at Initech</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	content := buildDocx(t, docXML)

	text := Text("resume.docx", content)

	assert.Contains(t, text, "Jane Doe\n")
	assert.Contains(t, text, "Software Engineer at Initech")
	assert.NotContains(t, text, "<w:")
}

func TestText_DocxExtensionIsCaseInsensitive(t *testing.T) {
	content := buildDocx(t, `<w:p><w:t>Hello</w:t></w:p>`)
	assert.Contains(t, Text("RESUME.DOCX", content), "Hello")
}

func TestText_CorruptDocxReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", Text("resume.docx", []byte("not a zip archive")))
}

func TestText_DocxWithoutDocumentXMLReturnsEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, "", Text("resume.docx", buf.Bytes()))
}

func TestText_CorruptPdfReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", Text("resume.pdf", []byte("%PDF-1.4 truncated garbage")))
	assert.Equal(t, "", Text("resume.pdf", nil))
}

func TestText_UnknownExtensionFallsBackToRawDecode(t *testing.T) {
	raw := []byte("John Smith\njohn@example.com")
	assert.Equal(t, "John Smith\njohn@example.com", Text("resume.doc", raw))
	assert.Equal(t, "plain body", Text("noextension", []byte("plain body")))
}

func TestText_FallbackDropsInvalidUTF8(t *testing.T) {
	raw := []byte{'h', 'i', 0xff, 0xfe, '!', 0x80}
	assert.Equal(t, "hi!", Text("resume.doc", raw))
}

func TestText_NeverPanicsOnGarbage(t *testing.T) {
	garbage := [][]byte{nil, {}, []byte("x"), bytes.Repeat([]byte{0xde, 0xad}, 512)}
	for _, filename := range []string{"a.pdf", "a.docx", "a.doc", "a.txt", ""} {
		for _, content := range garbage {
			assert.NotPanics(t, func() {
				_ = Text(filename, content)
			})
		}
	}
}
