package wirefile

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/marshallmcdonnell/advent-of-code-2019/internal/domain"
	"github.com/marshallmcdonnell/advent-of-code-2019/internal/ports"
)

// StdinPath makes LoadInstructions read from standard input.
const StdinPath = "-"

const maxLineBytes = 4 << 20

type Loader struct {
	inputsDir string
	stdin     io.Reader
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{inputsDir: "inputs", stdin: os.Stdin}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithInputsDir(dir string) Option {
	return func(l *Loader) { l.inputsDir = dir }
}

// WithStdin is useful for tests.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) { l.stdin = r }
}

var (
	_ ports.InstructionSource = (*Loader)(nil)
	_ ports.InputCatalog      = (*Loader)(nil)
)

// LoadInstructions returns one instruction string per non-blank line.
// Surrounding whitespace (including CR from CRLF files) is dropped.
func (l *Loader) LoadInstructions(path string) ([]string, error) {
	if path == StdinPath {
		return l.read(l.stdin, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "wirefile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	return l.read(f, path)
}

func (l *Loader) read(r io.Reader, path string) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "wirefile.read",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return lines, nil
}

// ListInputs lists regular files in the inputs directory, sorted by name.
func (l *Loader) ListInputs(root string) ([]domain.InputRef, error) {
	dir := filepath.Join(root, l.inputsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "wirefile.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.InputRef
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		name := e.Name()
		refs = append(refs, domain.InputRef{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}
