package minio

import (
	"Reunite/internal/api/config"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

var ErrNotInitialized = errors.New("minio client is not initialized")

// UploadFile 上传文件到MinIO，返回对象 key
func UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if Client == nil {
		return "", ErrNotInitialized
	}

	uploadInfo, err := Client.PutObject(ctx, BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return uploadInfo.Key, nil
}

// DeleteFile 删除MinIO中的文件
func DeleteFile(ctx context.Context, objectName string) error {
	if Client == nil {
		return ErrNotInitialized
	}

	if err := Client.RemoveObject(ctx, BucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// GetPublicURL 获取文件的公共访问URL
func GetPublicURL(objectName string) string {
	cfg := config.Cfg.MinIO
	if cfg.PublicBase != "" {
		return strings.TrimRight(cfg.PublicBase, "/") + "/" + objectName
	}

	protocol := "http"
	if cfg.UseSSL {
		protocol = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", protocol, cfg.Endpoint, BucketName, objectName)
}

// Storage 以对象存储实现业务层的媒体存储接口
type Storage struct{}

func NewStorage() *Storage {
	return &Storage{}
}

func (s *Storage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	key, err := UploadFile(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}
	return GetPublicURL(key), nil
}

func (s *Storage) Delete(ctx context.Context, url string) error {
	prefix := GetPublicURL("")
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	return DeleteFile(ctx, strings.TrimPrefix(url, prefix))
}
