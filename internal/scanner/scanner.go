// Package scanner evaluates the line-oriented location listing for
// vulnerability markers. A location line is classified weak solely by the
// literal trailing match on "weak"; everything else on the line is free text.
package scanner

import (
	"bufio"
	"io"
	"io/fs"
	"strings"

	"go.uber.org/zap"
)

// weakSuffix marks a vulnerable location line.
const weakSuffix = "weak"

// Scanner scans a single listing file inside an fs.FS. The filesystem is
// injected so tests can fail the open or the read independently.
type Scanner struct {
	fsys   fs.FS
	path   string
	logger *zap.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger attaches a logger; the default is a nop.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scanner) { s.logger = logger }
}

// New builds a Scanner for path inside fsys.
func New(fsys fs.FS, path string, opts ...Option) *Scanner {
	s := &Scanner{fsys: fsys, path: path, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan reads the listing and reports whether any line ends in "weak". A
// failed open or read degrades to known=false rather than an error: the
// answer is unknown, and that is a normal outcome. Scanning short-circuits
// on the first weak line. An empty listing is a known, all-strong answer.
func (s *Scanner) Scan() (weak, known bool) {
	f, err := s.fsys.Open(s.path)
	if err != nil {
		s.logger.Debug("listing unavailable", zap.String("path", s.path), zap.Error(err))
		return false, false
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		s.logger.Debug("listing unreadable", zap.String("path", s.path), zap.Error(err))
		return false, false
	}

	lines := bufio.NewScanner(strings.NewReader(string(content)))
	for lines.Scan() {
		if strings.HasSuffix(lines.Text(), weakSuffix) {
			return true, true
		}
	}
	return false, true
}
