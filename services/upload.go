package services

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const (
	// MaxUploadSize caps attached documents at 10MB
	MaxUploadSize   = 10 * 1024 * 1024
	AllowedMimeType = "application/pdf"

	dataURIPrefix = "data:application/pdf;base64,"
)

// ValidatePDFUpload checks if the uploaded file is a valid PDF within size limits
func ValidatePDFUpload(fileHeader *multipart.FileHeader) error {
	// Check file size
	if fileHeader.Size > MaxUploadSize {
		return fmt.Errorf("file size exceeds maximum allowed size of 10MB")
	}

	// Check file extension
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".pdf" {
		return fmt.Errorf("only PDF files are allowed")
	}

	// Open file to check content
	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Read first 512 bytes to detect content type
	buffer := make([]byte, 512)
	_, err = file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file content: %w", err)
	}

	// Check if it's a PDF (PDF files start with %PDF)
	if len(buffer) < 4 || string(buffer[0:4]) != "%PDF" {
		return fmt.Errorf("file is not a valid PDF")
	}

	return nil
}

// EncodePDFDataURI reads the whole upload into memory and encodes it as the
// data-URI string stored inline on the case record.
func EncodePDFDataURI(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read file content: %w", err)
	}
	if len(content) > MaxUploadSize {
		return "", fmt.Errorf("file size exceeds maximum allowed size of 10MB")
	}

	return dataURIPrefix + base64.StdEncoding.EncodeToString(content), nil
}

// DecodePDFDataURI turns a stored data-URI back into raw PDF bytes.
func DecodePDFDataURI(dataURI string) ([]byte, error) {
	encoded, ok := strings.CutPrefix(dataURI, dataURIPrefix)
	if !ok {
		return nil, fmt.Errorf("stored document is not a PDF data-URI")
	}
	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored document: %w", err)
	}
	return content, nil
}
