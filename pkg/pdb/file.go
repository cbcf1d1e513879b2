package pdb

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Persisted layout, little-endian:
//
//	magic    [4]byte "CPDB"
//	version  uint16
//	nameLen  uint16, then the domain name bytes
//	size     uint32
//	data     size bytes of distances
//
// The header is checked in full on load; any disagreement with the running
// domain or format version fails with ErrDatabaseMismatch so a stale file is
// rebuilt instead of silently trusted.
var fileMagic = [4]byte{'C', 'P', 'D', 'B'}

const fileVersion uint16 = 1

// Save writes the table to path, creating parent directories as needed.
func Save(t *Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create database file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeHeader(w, t); err != nil {
		return err
	}
	if _, err := w.Write(t.data); err != nil {
		return fmt.Errorf("failed to write database entries: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush database file: %w", err)
	}
	return nil
}

func writeHeader(w io.Writer, t *Table) error {
	if _, err := w.Write(fileMagic[:]); err != nil {
		return fmt.Errorf("failed to write database header: %w", err)
	}

	name := t.domain.Name()
	if err := binary.Write(w, binary.LittleEndian, fileVersion); err != nil {
		return fmt.Errorf("failed to write database header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(name))); err != nil {
		return fmt.Errorf("failed to write database header: %w", err)
	}
	if _, err := io.WriteString(w, name); err != nil {
		return fmt.Errorf("failed to write database header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, t.Size()); err != nil {
		return fmt.Errorf("failed to write database header: %w", err)
	}
	return nil
}

// Load reads a table from path and validates it against the given domain.
// A header that disagrees on magic, version, domain name or size returns
// ErrDatabaseMismatch.
func Load(path string, d Domain) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database file: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if err := readHeader(r, d); err != nil {
		return nil, err
	}

	data := make([]uint8, d.Size())
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: truncated data: %v", ErrDatabaseMismatch, err)
	}
	// Trailing bytes mean the file was written for something else entirely.
	if _, err := r.ReadByte(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing bytes after %d entries", ErrDatabaseMismatch, d.Size())
	}

	return &Table{domain: d, data: data}, nil
}

func readHeader(r io.Reader, d Domain) error {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return fmt.Errorf("%w: short header: %v", ErrDatabaseMismatch, err)
	}
	if magic != fileMagic {
		return fmt.Errorf("%w: bad magic %q", ErrDatabaseMismatch, magic[:])
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return fmt.Errorf("%w: short header: %v", ErrDatabaseMismatch, err)
	}
	if version != fileVersion {
		return fmt.Errorf("%w: format version %d, want %d", ErrDatabaseMismatch, version, fileVersion)
	}

	var nameLen uint16
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return fmt.Errorf("%w: short header: %v", ErrDatabaseMismatch, err)
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return fmt.Errorf("%w: short header: %v", ErrDatabaseMismatch, err)
	}
	if string(name) != d.Name() {
		return fmt.Errorf("%w: built for domain %q, want %q", ErrDatabaseMismatch, name, d.Name())
	}

	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return fmt.Errorf("%w: short header: %v", ErrDatabaseMismatch, err)
	}
	if size != d.Size() {
		return fmt.Errorf("%w: %d entries, want %d", ErrDatabaseMismatch, size, d.Size())
	}

	return nil
}

// ReadInfo reads only the header of a persisted database, resolving the
// domain it was built for. Used for inspection without loading the data.
func ReadInfo(path string) (Domain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database file: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil || magic != fileMagic {
		return nil, fmt.Errorf("%w: not a pattern database file", ErrDatabaseMismatch)
	}
	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil || version != fileVersion {
		return nil, fmt.Errorf("%w: unsupported format version", ErrDatabaseMismatch)
	}
	var nameLen uint16
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return nil, fmt.Errorf("%w: short header", ErrDatabaseMismatch)
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, fmt.Errorf("%w: short header", ErrDatabaseMismatch)
	}

	d, ok := domainByName(string(name))
	if !ok {
		return nil, fmt.Errorf("%w: unknown domain %q", ErrDatabaseMismatch, name)
	}
	return d, nil
}

// Open returns a usable table for the domain: loaded from path when a valid
// persisted copy exists, otherwise built from scratch and saved back.
// The rebuilt result reports whether construction ran.
func Open(path string, d Domain, opts ...BuildOption) (t *Table, rebuilt bool, err error) {
	t, err = Load(path, d)
	if err == nil {
		return t, false, nil
	}
	// Anything short of a clean load triggers a rebuild: a missing file and
	// a mismatched one are handled identically.
	t = Build(d, opts...)
	if err := Save(t, path); err != nil {
		return nil, true, err
	}
	return t, true, nil
}
