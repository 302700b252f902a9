// Copyright 2024 Fantom Foundation
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
)

const writerBufferSize = 65536 * 16 // 1MiB

// Compression of an output file.
type Compression int

const (
	NoCompression Compression = iota
	GzipCompression
	Bzip2Compression
)

// CompressionOf selects the compression by file suffix.
func CompressionOf(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return GzipCompression
	case ".bz2":
		return Bzip2Compression
	default:
		return NoCompression
	}
}

// FileWriter writes a possibly compressed file through a buffer.
type FileWriter struct {
	*bufio.Writer
	file *os.File
	zw   io.WriteCloser // compressed stream, nil if not compressed
}

// NewFileWriter creates a file and compresses its content according to
// the file suffix.
func NewFileWriter(path string) (*FileWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cannot create file %v; %w", path, err)
	}
	fw := &FileWriter{file: file}
	var w io.Writer = file
	switch CompressionOf(path) {
	case GzipCompression:
		fw.zw = gzip.NewWriter(file)
	case Bzip2Compression:
		if fw.zw, err = bzip2.NewWriter(file, &bzip2.WriterConfig{Level: 9}); err != nil {
			file.Close()
			return nil, fmt.Errorf("cannot open bzip stream; %w", err)
		}
	}
	if fw.zw != nil {
		w = fw.zw
	}
	fw.Writer = bufio.NewWriterSize(w, writerBufferSize)
	return fw, nil
}

// Close flushes the buffer and closes all file channels.
func (fw *FileWriter) Close() error {
	if err := fw.Flush(); err != nil {
		return fmt.Errorf("cannot flush file buffer; %w", err)
	}
	if fw.zw != nil {
		if err := fw.zw.Close(); err != nil {
			return fmt.Errorf("cannot close compressed stream; %w", err)
		}
	}
	if err := fw.file.Close(); err != nil {
		return fmt.Errorf("cannot close file; %w", err)
	}
	return nil
}

// FileReader reads a possibly compressed file.
type FileReader struct {
	io.Reader
	file *os.File
	zr   io.ReadCloser
}

// NewFileReader opens a file and decompresses its content according to
// the file suffix.
func NewFileReader(path string) (*FileReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file %v; %w", path, err)
	}
	fr := &FileReader{file: file}
	switch CompressionOf(path) {
	case GzipCompression:
		fr.zr, err = gzip.NewReader(file)
	case Bzip2Compression:
		fr.zr, err = bzip2.NewReader(file, &bzip2.ReaderConfig{})
	}
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("cannot open compressed stream of %v; %w", path, err)
	}
	fr.Reader = file
	if fr.zr != nil {
		fr.Reader = fr.zr
	}
	return fr, nil
}

// Close releases all file channels.
func (fr *FileReader) Close() error {
	if fr.zr != nil {
		if err := fr.zr.Close(); err != nil {
			return fmt.Errorf("cannot close compressed stream; %w", err)
		}
	}
	return fr.file.Close()
}
