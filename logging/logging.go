package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	Dir      = "logs"
	FileName = "hexbounce.log"
)

// Setup points the standard logger at Dir/FileName when debug is set and
// discards log output otherwise. Terminal hosts need this so log lines do
// not land on the screen they draw to. The returned file is nil when
// logging is off; the caller closes it.
func Setup(debug bool) *os.File {
	return SetupIn(Dir, debug)
}

// SetupIn is Setup with an explicit directory.
func SetupIn(dir string, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("logging started")
	return f
}
