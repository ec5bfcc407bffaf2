package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const avatarSide = 400

// ErrUnsupportedFormat - аватар не JPEG и не PNG
var ErrUnsupportedFormat = fmt.Errorf("only JPEG and PNG files are allowed")

// ResizeAvatar декодирует картинку, вырезает центральный квадрат и
// масштабирует его до 400x400 (режим cover). Возвращает перекодированные
// байты и content type.
func ResizeAvatar(file io.Reader, fileName string) ([]byte, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt != ".jpg" && fileExt != ".jpeg" && fileExt != ".png" {
		return nil, "", ErrUnsupportedFormat
	}

	src, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка при декодировании изображения: %w", err)
	}

	if format != "jpeg" && format != "png" {
		return nil, "", ErrUnsupportedFormat
	}

	dst := image.NewRGBA(image.Rect(0, 0, avatarSide, avatarSide))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, centerSquare(src.Bounds()), draw.Over, nil)

	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, dst); err != nil {
			return nil, "", fmt.Errorf("ошибка при кодировании PNG: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	}

	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, "", fmt.Errorf("ошибка при кодировании JPEG: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

// centerSquare возвращает центральный квадрат со стороной min(w, h)
func centerSquare(b image.Rectangle) image.Rectangle {
	w := b.Dx()
	h := b.Dy()

	side := w
	if h < w {
		side = h
	}

	x0 := b.Min.X + (w-side)/2
	y0 := b.Min.Y + (h-side)/2

	return image.Rect(x0, y0, x0+side, y0+side)
}
