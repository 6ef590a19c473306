// Package store implements the flat-file record store backing the POS.
//
// Every store file is line-oriented, comma-delimited text with no header and
// no escaping. Reads are whole-file scans; mutations rewrite the whole file
// through a sibling temp file swapped in with os.Rename, so a file is always
// either untouched or fully rewritten.
package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Delimiter separates fields within a record line.
const Delimiter = ","

// File is a single flat-text record file. Every method holds the file's
// mutex, so concurrent HTTP handlers cannot interleave a read-check-write
// sequence against the same file.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile wraps an on-disk record file. The file need not exist yet; a
// missing file reads as empty.
func NewFile(path string) *File { return &File{path: path} }

// Path returns the location of the backing file.
func (f *File) Path() string { return f.path }

// ReadAll scans the whole file and returns one field slice per record line.
// Blank lines are skipped.
func (f *File) ReadAll() ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readAll()
}

// Append writes one record line to the end of the file.
func (f *File) Append(fields ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", f.path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(strings.Join(fields, Delimiter) + "\n"); err != nil {
		return fmt.Errorf("append to %s: %w", f.path, err)
	}
	return nil
}

// Update runs a read-modify-write cycle under the file lock: the current
// records are passed to fn, and the records fn returns replace the file
// contents atomically. If fn returns an error the file is left untouched.
func (f *File) Update(fn func(records [][]string) ([][]string, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	records, err := f.readAll()
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return f.rewrite(updated)
}

func (f *File) readAll() ([][]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", f.path, err)
	}
	defer file.Close()

	var records [][]string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		records = append(records, strings.Split(line, Delimiter))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return records, nil
}

// rewrite writes the full record set to <path>.tmp and renames it over the
// original. On any failure before the rename the temp file is removed and
// the original is untouched.
func (f *File) rewrite(records [][]string) error {
	tmpPath := f.path + ".tmp"
	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open temp file %s: %w", tmpPath, err)
	}

	w := bufio.NewWriter(tmp)
	for _, fields := range records {
		if _, err := w.WriteString(strings.Join(fields, Delimiter) + "\n"); err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("write temp file %s: %w", tmpPath, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("flush temp file %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// ── data directory ────────────────────────────────────────────────────────────

// Standard file names inside the data directory.
const (
	AdminFileName    = "admin.txt"
	CashiersFileName = "cashiers.txt"
	ProductsFileName = "products.txt"
	BillsFileName    = "bills.txt"
)

// Default administrator record written on first run.
const (
	DefaultAdminUser     = "admin"
	DefaultAdminPassword = "admin123"
)

// Store bundles the four record files of a single-store deployment.
type Store struct {
	Admin    *File
	Cashiers *File
	Products *File
	Bills    *File
}

// Open prepares the data directory: it creates it if missing, writes the
// default administrator record on first run, and touches the remaining
// files so later appends and scans see them.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}

	adminPath := filepath.Join(dataDir, AdminFileName)
	if _, err := os.Stat(adminPath); os.IsNotExist(err) {
		record := DefaultAdminUser + Delimiter + DefaultAdminPassword + "\n"
		if err := os.WriteFile(adminPath, []byte(record), 0o644); err != nil {
			return nil, fmt.Errorf("seed admin file: %w", err)
		}
	}

	for _, name := range []string{CashiersFileName, ProductsFileName, BillsFileName} {
		path := filepath.Join(dataDir, name)
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		file.Close()
	}

	return &Store{
		Admin:    NewFile(adminPath),
		Cashiers: NewFile(filepath.Join(dataDir, CashiersFileName)),
		Products: NewFile(filepath.Join(dataDir, ProductsFileName)),
		Bills:    NewFile(filepath.Join(dataDir, BillsFileName)),
	}, nil
}
