package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

const LevelEnv = "GENCMAKE_LOG"

// InitLogger installs Handler on stderr with the level taken from GENCMAKE_LOG (default ERROR).
func InitLogger() {
	log.SetHandler(NewHandler(os.Stderr))
	log.SetLevel(ParseLevel(os.Getenv(LevelEnv)))
}

// ParseLevel accepts any letter case and falls back to ErrorLevel for empty or unknown values.
func ParseLevel(value string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(value))
	if err != nil {
		return log.ErrorLevel
	}
	return level
}

// Handler writes one line per entry: timestamp, level initial, message and sorted fields.
type Handler struct {
	out io.Writer
	now func() time.Time
}

func NewHandler(out io.Writer) *Handler {
	return &Handler{out: out, now: time.Now}
}

func (h *Handler) HandleLog(e *log.Entry) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1s %s", h.now().Format("2006-01-02 15:04:05"), strings.ToUpper(e.Level.String()), e.Message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteString("\n")

	_, err := io.WriteString(h.out, b.String())
	return err
}
