package resume

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// PageCount extracts the page count from an in-memory PDF. Best effort:
// a document the parser cannot handle yields 0, never an upload failure.
func PageCount(data []byte) (n int) {
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0
	}
	return reader.NumPage()
}
