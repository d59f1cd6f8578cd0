package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// MaxFiles — не больше десяти картинок на одну работу.
	MaxFiles = 10
	// MaxFileSize — 10MB на файл.
	MaxFileSize = 10 << 20
)

// Saver пишет принятые картинки в статическую область и возвращает
// публичные пути вида /uploads/<имя>.
type Saver struct {
	dir string
}

// NewSaver создает каталог загрузок, если его еще нет.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Saver{dir: dir}, nil
}

func (s *Saver) Dir() string {
	return s.dir
}

// SaveImages проверяет каждый файл (только image/*, лимит размера) и
// сохраняет его под случайным именем. Если какой-то файл не прошел проверку,
// уже записанные в этом запросе файлы убираются и возвращается ошибка.
func (s *Saver) SaveImages(files []*multipart.FileHeader) ([]string, error) {
	if len(files) > MaxFiles {
		return nil, fmt.Errorf("at most %d images allowed", MaxFiles)
	}

	var saved []string
	cleanup := func() {
		for _, p := range saved {
			os.Remove(filepath.Join(s.dir, filepath.Base(p)))
		}
	}

	for _, fh := range files {
		if fh.Size > MaxFileSize {
			cleanup()
			return nil, fmt.Errorf("file %q is too large", fh.Filename)
		}
		name, err := s.saveOne(fh)
		if err != nil {
			cleanup()
			return nil, err
		}
		saved = append(saved, "/uploads/"+name)
	}
	return saved, nil
}

func (s *Saver) saveOne(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open %q: %w", fh.Filename, err)
	}
	defer src.Close()

	// Тип определяем по содержимому, а не по заголовку клиента
	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("read %q: %w", fh.Filename, err)
	}
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		return "", fmt.Errorf("file %q is not an image", fh.Filename)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create %q: %w", name, err)
	}
	defer dst.Close()

	if _, err := dst.Write(head[:n]); err != nil {
		return "", fmt.Errorf("write %q: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write %q: %w", name, err)
	}
	return name, nil
}
