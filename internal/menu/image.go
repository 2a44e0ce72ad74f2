package menu

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const menuPicDir = "menupic"

func ensureDirExists(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// ProcessImageUpload decodes an uploaded menu photo, stores a web-sized
// copy plus a 300px thumbnail, and returns the public path of the copy.
func ProcessImageUpload(file *multipart.FileHeader, uploadDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	fileName := uuid.New().String() + ".jpg"

	picDir := filepath.Join(uploadDir, menuPicDir)
	thumbDir := filepath.Join(picDir, "thumb")

	if err := ensureDirExists(picDir); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := ensureDirExists(thumbDir); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	webImg := imaging.Resize(img, 800, 0, imaging.Lanczos)
	if err := imaging.Save(webImg, filepath.Join(picDir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, filepath.Join(thumbDir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/static/menupic/" + fileName, nil
}
