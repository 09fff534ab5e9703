// Package archive собирает именованные буферы в zip-поток.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

var (
	// ErrClosed возвращается при записи в уже финализированный архив.
	ErrClosed = errors.New("archive already closed")

	// ErrDuplicateEntry возвращается при повторном имени файла внутри архива.
	ErrDuplicateEntry = errors.New("duplicate archive entry")
)

// ZipStream пишет zip-архив напрямую в io.Writer, не буферизуя его целиком.
// Первая ошибка записи запоминается и возвращается всеми последующими вызовами.
type ZipStream struct {
	mu      sync.Mutex
	zw      *zip.Writer
	names   map[string]struct{}
	count   int
	closed  bool
	err     error
	modTime time.Time
}

// NewZipStream создаёт архив поверх w. modTime проставляется всем записям.
func NewZipStream(w io.Writer, modTime time.Time) *ZipStream {
	return &ZipStream{
		zw:      zip.NewWriter(w),
		names:   make(map[string]struct{}),
		modTime: modTime,
	}
}

// Append добавляет файл name с содержимым content в конец архива.
func (z *ZipStream) Append(name string, content []byte) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if z.closed {
		return ErrClosed
	}
	if z.err != nil {
		return z.err
	}
	if _, ok := z.names[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, name)
	}

	w, err := z.zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: z.modTime,
	})
	if err != nil {
		z.err = fmt.Errorf("create entry %s: %w", name, err)
		return z.err
	}
	if _, err := w.Write(content); err != nil {
		z.err = fmt.Errorf("write entry %s: %w", name, err)
		return z.err
	}

	z.names[name] = struct{}{}
	z.count++
	return nil
}

// Close финализирует архив. Повторный вызов возвращает ErrClosed.
func (z *ZipStream) Close() error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if z.closed {
		return ErrClosed
	}
	z.closed = true

	if err := z.zw.Close(); err != nil {
		if z.err == nil {
			z.err = fmt.Errorf("finalize archive: %w", err)
		}
	}
	return z.err
}

// Len возвращает количество записанных файлов.
func (z *ZipStream) Len() int {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.count
}
