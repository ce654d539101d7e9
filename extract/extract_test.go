package extract_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/newmoodle/backend/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlainTextRoundTrip(t *testing.T) {
	content := "Hello world\nsecond line, ar diakritiskām zīmēm un 日本語"
	res, err := extract.Extract([]byte(content), extract.PlainText, "essay.txt")
	require.NoError(t, err)
	assert.Equal(t, content, res.Text)
	assert.False(t, res.IsImage)
}

func TestExtractPlainTextRejectsInvalidUtf8(t *testing.T) {
	_, err := extract.Extract([]byte{0xff, 0xfe, 0xfd}, extract.PlainText, "essay.txt")
	var exErr *extract.ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, extract.PlainText, exErr.Format)
}

func TestExtractUnsupportedNeverExtracts(t *testing.T) {
	_, err := extract.Extract([]byte("anything"), extract.Unsupported, "report.xyz")
	assert.ErrorIs(t, err, extract.ErrUnsupportedFormat)
}

func TestExtractMalformedPdfFails(t *testing.T) {
	_, err := extract.Extract([]byte("definitely not a pdf"), extract.PdfDocument, "report.pdf")
	var exErr *extract.ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, extract.PdfDocument, exErr.Format)
}

func TestExtractDocxConcatenatesRuns(t *testing.T) {
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Hello </w:t></w:r><w:r><w:t>world</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p>
  </w:body>
</w:document>`
	content := buildDocx(t, document)

	res, err := extract.Extract(content, extract.WordDocument, "thesis.docx")
	require.NoError(t, err)
	assert.Equal(t, "Hello world\nSecond paragraph", res.Text)
}

func TestExtractDocxMissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = extract.Extract(buf.Bytes(), extract.WordDocument, "thesis.docx")
	var exErr *extract.ExtractionError
	require.ErrorAs(t, err, &exErr)
}

func TestExtractDocxNotAZip(t *testing.T) {
	_, err := extract.Extract([]byte("plain text pretending"), extract.WordDocument, "thesis.docx")
	var exErr *extract.ExtractionError
	require.ErrorAs(t, err, &exErr)
}

func TestExtractSmallImageKeepsOriginalBytes(t *testing.T) {
	content := buildPng(t, 100, 60)

	res, err := extract.Extract(content, extract.Image, "photo.png")
	require.NoError(t, err)
	assert.True(t, res.IsImage)
	assert.Equal(t, "image/png", res.ImageMime)
	assert.Equal(t, content, res.ImageBytes)
	assert.Empty(t, res.Text)
}

func TestExtractOversizedImageIsDownscaled(t *testing.T) {
	content := buildPng(t, 2400, 100)

	res, err := extract.Extract(content, extract.Image, "photo.png")
	require.NoError(t, err)
	assert.True(t, res.IsImage)
	assert.Equal(t, "image/jpeg", res.ImageMime)
	assert.NotEqual(t, content, res.ImageBytes)
}

func TestExtractGifAndWebpPassThrough(t *testing.T) {
	var gifBuf bytes.Buffer
	img := image.NewPaletted(image.Rect(0, 0, 8, 8), []color.Color{color.White, color.Black})
	require.NoError(t, gif.Encode(&gifBuf, img, nil))
	gifContent := gifBuf.Bytes()

	res, err := extract.Extract(gifContent, extract.Image, "photo.gif")
	require.NoError(t, err)
	assert.True(t, res.IsImage)
	assert.Equal(t, "image/gif", res.ImageMime)
	assert.Equal(t, gifContent, res.ImageBytes)

	// webp is never decoded so the bytes go through verbatim
	webpContent := []byte("RIFF....WEBPVP8 ")
	res, err = extract.Extract(webpContent, extract.Image, "photo.webp")
	require.NoError(t, err)
	assert.True(t, res.IsImage)
	assert.Equal(t, "image/webp", res.ImageMime)
	assert.Equal(t, webpContent, res.ImageBytes)
}

func TestExtractImageDataURI(t *testing.T) {
	content := buildPng(t, 10, 10)

	res, err := extract.Extract(content, extract.Image, "photo.png")
	require.NoError(t, err)
	uri := res.DataURI()
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"), "got %q", uri[:40])
}

type fakeRecognizer struct {
	text string
	err  error
}

func (f *fakeRecognizer) RecognizeText(ctx context.Context, imageBytes []byte) (string, error) {
	return f.text, f.err
}

func TestTextViaOCR(t *testing.T) {
	res, err := extract.TextViaOCR(context.Background(), &fakeRecognizer{text: "handwritten essay"}, []byte{1})
	require.NoError(t, err)
	assert.Equal(t, "handwritten essay", res.Text)
}

func TestTextViaOCRProviderError(t *testing.T) {
	providerErr := errors.New("quota exceeded")
	_, err := extract.TextViaOCR(context.Background(), &fakeRecognizer{err: providerErr}, []byte{1})
	var exErr *extract.ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.ErrorIs(t, err, providerErr)
}

func buildDocx(t *testing.T, documentXml string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXml))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func buildPng(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
