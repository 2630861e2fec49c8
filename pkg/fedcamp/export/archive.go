package export

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

// Format selects the archive container for a download package.
type Format string

const (
	FormatZip   Format = "zip"
	FormatTar   Format = "tar"
	FormatTgz   Format = "tgz"
	FormatTarGz Format = "tar.gz"
)

// BuildDownloadPackage serializes each table to CSV and bundles the files
// into w using the given container format.
func BuildDownloadPackage(w io.Writer, format Format, tables []Table) error {
	switch format {
	case FormatZip:
		return writeZip(w, tables)
	case FormatTar:
		return writeTar(w, tables)
	case FormatTgz, FormatTarGz:
		gz := gzip.NewWriter(w)
		if err := writeTar(gz, tables); err != nil {
			gz.Close()
			return err
		}
		return gz.Close()
	default:
		return fmt.Errorf("unsupported package format %q: use zip or tar.gz", format)
	}
}

// PackageBytes returns the download package as an in-memory byte sequence.
func PackageBytes(format Format, tables []Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := BuildDownloadPackage(&buf, format, tables); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PackageFile writes the download package to path, creating the parent
// directory if needed.
func PackageFile(format Format, path string, tables []Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := BuildDownloadPackage(f, format, tables); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("tables", len(tables)).
		Msg("Wrote download package")

	return nil
}

func writeZip(w io.Writer, tables []Table) error {
	zw := zip.NewWriter(w)
	for _, t := range tables {
		fw, err := zw.Create(t.Name)
		if err != nil {
			zw.Close()
			return err
		}
		if err := t.WriteCSV(fw); err != nil {
			zw.Close()
			return err
		}
	}
	return zw.Close()
}

func writeTar(w io.Writer, tables []Table) error {
	tw := tar.NewWriter(w)
	for _, t := range tables {
		var buf bytes.Buffer
		if err := t.WriteCSV(&buf); err != nil {
			tw.Close()
			return err
		}
		hdr := &tar.Header{
			Name:    t.Name,
			Mode:    0644,
			Size:    int64(buf.Len()),
			ModTime: time.Now(),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			tw.Close()
			return err
		}
		if _, err := io.Copy(tw, &buf); err != nil {
			tw.Close()
			return err
		}
	}
	return tw.Close()
}
