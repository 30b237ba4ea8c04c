package dataset

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
)

// UnpackArchive распаковывает файл данных рядом с архивом и возвращает путь
// к распакованному файлу. Не архив — возвращается как есть. Исходный архив
// не удаляется.
func UnpackArchive(filePath string) (string, error) {
	switch filepath.Ext(filePath) {
	case ".zip":
		return unpackZip(filePath)
	case ".gz":
		return unpackGzip(filePath)
	case ".lz4":
		return unpackLZ4(filePath)
	}
	return filePath, nil
}

func unpackZip(filePath string) (string, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	// Берем самый большой файл архива, остальное обычно мусор.
	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		return "", fmt.Errorf("zip archive has no files: %s", filePath)
	}

	destPath := filepath.Join(filepath.Dir(filePath), filepath.Base(largestFile.Name))
	rc, err := largestFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return destPath, writeTo(destPath, rc)
}

func unpackGzip(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	gr, err := gzip.NewReader(file)
	if err != nil {
		return "", err
	}
	defer gr.Close()

	destPath := strings.TrimSuffix(filePath, ".gz")
	return destPath, writeTo(destPath, gr)
}

func unpackLZ4(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	destPath := strings.TrimSuffix(filePath, ".lz4")
	return destPath, writeTo(destPath, lz4.NewReader(file))
}

func writeTo(destPath string, r io.Reader) error {
	outFile, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer outFile.Close()
	if _, err := io.Copy(outFile, r); err != nil {
		return err
	}
	return nil
}
