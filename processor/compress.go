package processor

import (
	"io"
	"strings"

	"github.com/golang/snappy"
)

// CompressedSuffix - расширение файлов источников, сжатых snappy (framing format)
const CompressedSuffix = ".sz"

// IsCompressed проверяет по имени, сжат ли источник
func IsCompressed(name string) bool {
	return strings.HasSuffix(name, CompressedSuffix)
}

// NewSourceReader возвращает читатель источника, распаковывая snappy при необходимости
func NewSourceReader(r io.Reader, name string) io.Reader {
	if IsCompressed(name) {
		return snappy.NewReader(r)
	}
	return r
}

// NewCompressedWriter возвращает писатель, сжимающий данные snappy.
// Вызывающая сторона обязана вызвать Close, чтобы сбросить буфер.
func NewCompressedWriter(w io.Writer) io.WriteCloser {
	return snappy.NewBufferedWriter(w)
}
