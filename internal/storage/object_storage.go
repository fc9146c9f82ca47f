package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"marketplace/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStorage 提供对象存储功能，保存商品图片与商家资质文件
type ObjectStorage struct {
	client     *minio.Client
	bucketName string
}

// NewObjectStorage 创建对象存储服务
func NewObjectStorage(cfg config.StorageConfig) (*ObjectStorage, error) {
	// 创建MinIO客户端
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	// 检查存储桶是否存在，不存在则创建
	bucketExists, err := client.BucketExists(context.Background(), cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("检查存储桶失败: %w", err)
	}

	if !bucketExists {
		err = client.MakeBucket(context.Background(), cfg.BucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("创建存储桶失败: %w", err)
		}
	}

	return &ObjectStorage{
		client:     client,
		bucketName: cfg.BucketName,
	}, nil
}

// UploadFile 上传文件到对象存储
func (s *ObjectStorage) UploadFile(file *multipart.FileHeader, objectKey string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("打开文件失败: %w", err)
	}
	defer src.Close()

	_, err = s.client.PutObject(
		context.Background(),
		s.bucketName,
		objectKey,
		src,
		file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")},
	)
	if err != nil {
		return fmt.Errorf("上传文件失败: %w", err)
	}

	return nil
}

// GetFileURL 获取文件的预签名访问URL
func (s *ObjectStorage) GetFileURL(objectKey string) (string, error) {
	url, err := s.client.PresignedGetObject(
		context.Background(),
		s.bucketName,
		objectKey,
		time.Hour*24, // URL有效期24小时
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("获取文件URL失败: %w", err)
	}

	return url.String(), nil
}

// DeleteFile 从对象存储中删除文件
func (s *ObjectStorage) DeleteFile(objectKey string) error {
	err := s.client.RemoveObject(
		context.Background(),
		s.bucketName,
		objectKey,
		minio.RemoveObjectOptions{},
	)
	if err != nil {
		return fmt.Errorf("删除文件失败: %w", err)
	}

	return nil
}

// GetObject 获取文件内容
func (s *ObjectStorage) GetObject(objectKey string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(
		context.Background(),
		s.bucketName,
		objectKey,
		minio.GetObjectOptions{},
	)
	if err != nil {
		return nil, fmt.Errorf("获取文件内容失败: %w", err)
	}

	return obj, nil
}
