package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"notedock/internal/domain"
)

// UploadImage stores an image in the assets folder next to the document at
// mdPath under a random name and returns its URL relative to the document
func (r *Repository) UploadImage(mdPath, fileName string, data io.Reader) (string, error) {
	if err := domain.ValidatePath(mdPath, domain.PathDocument); err != nil {
		return "", err
	}
	ext := filepath.Ext(fileName)
	if !domain.IsImageExt(ext) {
		return "", &domain.PathError{Path: fileName, Err: domain.ErrUnsupportedImage}
	}

	dir := filepath.Join(filepath.Dir(r.resolve(mdPath)), domain.AssetsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create assets directory: %w", err)
	}

	name := uuid.NewString() + ext
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create image: %w", err)
	}
	if _, err := io.Copy(f, data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	r.logger.Info("image uploaded", "path", f.Name())
	return "./" + domain.AssetsDir + "/" + name, nil
}
