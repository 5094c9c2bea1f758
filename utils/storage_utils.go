package utils

import (
	"bytes"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Storage talks to an S3-compatible object store for photo uploads.
type Storage struct {
	client    *s3.S3
	bucket    string
	publicURL string
}

func NewStorage(accessKey, secretKey, bucket, region, endpoint, publicURL string) (*Storage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Endpoint:    aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 session: %w", err)
	}
	return &Storage{client: s3.New(sess), bucket: bucket, publicURL: publicURL}, nil
}

// UploadFile stores the file under folder/fileName with public-read access
// and returns the public URL.
func (s *Storage) UploadFile(file []byte, fileName string, folder string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, filePath), nil
}
