package console

import (
	"bufio"
	"fmt"
	"io"
)

// LineIO is the terminal surface a Session drives. *terminal.Terminal from
// golang.org/x/crypto/ssh/terminal satisfies it, as does ScannerIO.
type LineIO interface {
	io.Writer
	ReadLine() (string, error)
	SetPrompt(prompt string)
}

// ScannerIO is a LineIO for non-interactive input such as pipes and tests.
// The prompt is written before each read and lines are split on '\n'.
type ScannerIO struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

// NewScannerIO reads lines from r and writes prompts and output to w.
func NewScannerIO(r io.Reader, w io.Writer) *ScannerIO {
	return &ScannerIO{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
}

var _ LineIO = (*ScannerIO)(nil)

func (s *ScannerIO) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *ScannerIO) SetPrompt(prompt string) {
	s.prompt = prompt
}

// ReadLine returns io.EOF once the input is exhausted.
func (s *ScannerIO) ReadLine() (string, error) {
	if s.prompt != "" {
		if _, err := fmt.Fprint(s.out, s.prompt); err != nil {
			return "", err
		}
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}
