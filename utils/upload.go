// utils/upload.go
package utils

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageSize caps uploaded images at 5 MB.
const MaxImageSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var (
	ErrImageTooLarge = errors.New("image exceeds 5MB limit")
	ErrBadImageType  = errors.New("only .jpg, .jpeg, .png and .gif images are allowed")
)

// SaveUploadedImage writes the uploaded file into dir under a random name
// with the original extension and returns the stored filename.
func SaveUploadedImage(file *multipart.FileHeader, dir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", ErrBadImageType
	}
	if file.Size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	name := GenerateRandomString(16) + ext

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return name, nil
}

// ReadUploadedImage returns the raw bytes and content type of an uploaded
// file, for entities that store the image inline.
func ReadUploadedImage(file *multipart.FileHeader) ([]byte, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return nil, "", ErrBadImageType
	}
	if file.Size > MaxImageSize {
		return nil, "", ErrImageTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", err
	}

	mime := file.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/" + strings.TrimPrefix(ext, ".")
	}
	return data, mime, nil
}

// RemoveStoredImage deletes a previously stored file. Failures are logged
// and never surfaced: a leaked file must not fail the owning request.
func RemoveStoredImage(dir, name string) {
	if name == "" {
		return
	}
	path := filepath.Join(dir, filepath.Base(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove stored image %s: %v", path, err)
	}
}
