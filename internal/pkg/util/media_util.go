package util

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"io"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

var ErrNotSeekable = errors.New("reader is not seekable")

// GetSafeContentType 通过文件头判断真实类型，读取后将 reader 复位
func GetSafeContentType(r io.ReadSeeker) (string, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}
	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return "", ErrNotSeekable
	}
	return mt.String(), nil
}

// DetectContentType 对内存中的数据判断类型
func DetectContentType(data []byte) string {
	return mimetype.Detect(data).String()
}

// SquareThumbnail 将图片居中裁剪为 size x size 的 JPEG
func SquareThumbnail(r io.Reader, size int) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	dst := imaging.Fill(src, size, size, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
