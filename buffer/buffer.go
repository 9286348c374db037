package buffer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2/lexers"
)

// MaxFileSize is the largest file LoadFile will read.
const MaxFileSize = 100 * 1024 * 1024

var (
	// ErrOutOfRange indicates a line index outside [0, LineCount()).
	ErrOutOfRange = errors.New("line index out of range")

	// ErrTooLarge indicates a file above MaxFileSize.
	ErrTooLarge = errors.New("file too large")

	// ErrIsDirectory indicates the path names a directory.
	ErrIsDirectory = errors.New("is a directory")
)

// Buffer is an immutable, line-indexed view over a text blob.
// The text is retained once; each line is a byte span into it.
type Buffer struct {
	text    string
	starts  []int // byte offset of each line
	ends    []int // byte offset just past each line's content, terminator excluded
	runeLen []int // rune count of each line

	path       string
	size       int64
	lineEnding string // "LF", "CRLF" or "CR"; the first terminator seen wins
	encoding   string
	language   string
}

// Load reads r to EOF and indexes its lines.
func Load(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	b := FromString(string(data))
	b.encoding = detectEncoding(data)
	return b, nil
}

// LoadFile loads the file at path and records its metadata.
func LoadFile(path string) (*Buffer, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%s (%d MB, max %d MB): %w", path, info.Size()/(1024*1024), MaxFileSize/(1024*1024), ErrTooLarge)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b.path = path
	b.size = info.Size()
	b.language = DetectLanguage(path)
	return b, nil
}

// FromString indexes s. The result always has at least one line.
func FromString(s string) *Buffer {
	b := &Buffer{
		text:     s,
		encoding: "UTF-8",
	}

	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			b.addLine(start, i)
			b.noteEnding("LF")
			start = i + 1
		case '\r':
			b.addLine(start, i)
			if i+1 < len(s) && s[i+1] == '\n' {
				b.noteEnding("CRLF")
				i++
			} else {
				b.noteEnding("CR")
			}
			start = i + 1
		}
	}
	// The last line runs to EOF; it is empty when s ends with a terminator.
	b.addLine(start, len(s))

	if b.lineEnding == "" {
		b.lineEnding = "LF"
	}
	return b
}

func (b *Buffer) addLine(start, end int) {
	b.starts = append(b.starts, start)
	b.ends = append(b.ends, end)
	b.runeLen = append(b.runeLen, utf8.RuneCountInString(b.text[start:end]))
}

func (b *Buffer) noteEnding(ending string) {
	if b.lineEnding == "" {
		b.lineEnding = ending
	}
}

// LineCount returns the number of lines. It is never less than 1.
func (b *Buffer) LineCount() int {
	return len(b.starts)
}

// Line returns the content of line i without its terminator.
func (b *Buffer) Line(i int) (string, error) {
	if i < 0 || i >= len(b.starts) {
		return "", fmt.Errorf("%w: %d (have %d lines)", ErrOutOfRange, i, len(b.starts))
	}
	return b.text[b.starts[i]:b.ends[i]], nil
}

// LineLen returns the number of characters on line i.
// Like slice indexing it panics if i is out of range.
func (b *Buffer) LineLen(i int) int {
	return b.runeLen[i]
}

// Lines returns the content of lines [from, to), clipped to the buffer.
func (b *Buffer) Lines(from, to int) []string {
	if from < 0 {
		from = 0
	}
	if to > len(b.starts) {
		to = len(b.starts)
	}
	if from >= to {
		return nil
	}
	out := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, b.text[b.starts[i]:b.ends[i]])
	}
	return out
}

func (b *Buffer) Path() string       { return b.path }
func (b *Buffer) Size() int64        { return b.size }
func (b *Buffer) LineEnding() string { return b.lineEnding }
func (b *Buffer) Encoding() string   { return b.encoding }
func (b *Buffer) Language() string   { return b.language }

// DetectLanguage returns the lexer name registered for filename, or "" when
// nothing matches.
func DetectLanguage(filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return ""
	}
	config := lexer.Config()
	if config == nil {
		return ""
	}
	return config.Name
}

// detectEncoding checks BOM and validates UTF-8 to determine file encoding.
func detectEncoding(data []byte) string {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return "UTF-8 BOM"
	}
	if len(data) >= 2 {
		if data[0] == 0xFF && data[1] == 0xFE {
			return "UTF-16 LE"
		}
		if data[0] == 0xFE && data[1] == 0xFF {
			return "UTF-16 BE"
		}
	}
	if utf8.Valid(data) {
		return "UTF-8"
	}
	return "Latin-1"
}
