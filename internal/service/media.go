package service

import (
	"Reunite/internal/api/dto"
	"Reunite/internal/pkg/consts"
	"Reunite/internal/pkg/util"
	"bytes"
	"context"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaPolicy 上传限制
type MediaPolicy struct {
	MaxBytes   int64
	AvatarSize int
}

func checkImage(upload *dto.Upload, policy MediaPolicy) (string, error) {
	if policy.MaxBytes > 0 && int64(len(upload.Data)) > policy.MaxBytes {
		return "", ErrFileTooLarge
	}
	contentType := util.DetectContentType(upload.Data)
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return "", ErrFileNotSupported
	}
	return contentType, nil
}

// storePostImage 原图上传，按日期分目录
func storePostImage(ctx context.Context, storage MediaStorage, upload *dto.Upload, policy MediaPolicy) (string, error) {
	contentType, err := checkImage(upload, policy)
	if err != nil {
		return "", err
	}
	objectName := "posts/" + time.Now().Format("2006/01/02/") + uuid.NewString() + strings.ToLower(path.Ext(upload.Filename))
	return storage.Upload(ctx, objectName, bytes.NewReader(upload.Data), int64(len(upload.Data)), contentType)
}

// storeAvatar 裁剪为正方形 JPEG 后上传
func storeAvatar(ctx context.Context, storage MediaStorage, upload *dto.Upload, policy MediaPolicy) (string, error) {
	if _, err := checkImage(upload, policy); err != nil {
		return "", err
	}
	size := policy.AvatarSize
	if size <= 0 {
		size = 256
	}
	thumb, err := util.SquareThumbnail(bytes.NewReader(upload.Data), size)
	if err != nil {
		return "", ErrFileNotSupported
	}
	objectName := "avatars/" + uuid.NewString() + ".jpg"
	return storage.Upload(ctx, objectName, bytes.NewReader(thumb), int64(len(thumb)), "image/jpeg")
}
