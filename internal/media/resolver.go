package media

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var (
	// ErrNoImage — картинка не задана.
	ErrNoImage = errors.New("no image")
	// ErrNotFound — локальный файл отсутствует или это не файл.
	ErrNotFound = errors.New("image not found")
)

// Resolution — результат разрешения картинки: либо вложение, либо причина отказа.
type Resolution struct {
	Attachment tgbotapi.RequestFileData
	Reason     error
}

// Resolved сообщает, получено ли вложение.
func (r Resolution) Resolved() bool {
	return r.Attachment != nil
}

func resolved(att tgbotapi.RequestFileData) Resolution {
	return Resolution{Attachment: att}
}

func unresolved(reason error) Resolution {
	return Resolution{Reason: reason}
}

// Resolver превращает путь или URL в вложение для Telegram.
type Resolver struct {
	baseDir string
}

// NewResolver создаёт Resolver, который ищет относительные пути в baseDir.
// Пустой baseDir означает текущую рабочую директорию.
func NewResolver(baseDir string) *Resolver {
	return &Resolver{baseDir: baseDir}
}

// Resolve разрешает ref. http(s) URL отдаётся Telegram как есть,
// локальный файл должен существовать.
func (r *Resolver) Resolve(ctx context.Context, ref string) Resolution {
	if err := ctx.Err(); err != nil {
		return unresolved(err)
	}

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return unresolved(ErrNoImage)
	}

	if isRemote(ref) {
		return resolved(tgbotapi.FileURL(ref))
	}

	path, err := r.abs(ref)
	if err != nil {
		return unresolved(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return unresolved(fmt.Errorf("%w: %s: %w", ErrNotFound, path, err))
	}
	if !info.Mode().IsRegular() {
		return unresolved(fmt.Errorf("%w: %s is not a regular file", ErrNotFound, path))
	}

	return resolved(tgbotapi.FilePath(path))
}

func (r *Resolver) abs(ref string) (string, error) {
	if filepath.IsAbs(ref) {
		return ref, nil
	}

	base := r.baseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		base = wd
	}

	return filepath.Join(base, ref), nil
}

func isRemote(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(u.Scheme)

	return (scheme == "http" || scheme == "https") && u.Host != ""
}
