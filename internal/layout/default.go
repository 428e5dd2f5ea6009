package layout

import (
	"bytes"
	_ "embed"
)

// qwertyJSON is the built-in fallback geometry: keyUnit=60, keyHeight=50,
// spacing=6, rows qwertyuiop / asdfghjkl / zxcvbnm, matching the fixture
// assumed by the end-to-end scenarios this engine is tested against.
//
//go:embed assets/qwerty.json
var qwertyJSON []byte

// Default returns the built-in QWERTY layout, requiring no external file.
// Hosts that ship their own geometry document should use Load instead.
func Default() *Layout {
	l, err := load("embedded:qwerty", bytes.NewReader(qwertyJSON))
	if err != nil {
		// The embedded asset is part of the binary; a failure here means the
		// asset itself is broken, which is a build-time bug, not a runtime
		// condition callers can recover from.
		panic(err)
	}
	return l
}
