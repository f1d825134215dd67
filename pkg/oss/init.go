package oss

import (
	"FlowTube.com/config"
	"FlowTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

func Init() error {
	switch config.ConfigInfo.Upload.Backend {
	case "", "local":
		l, err := NewLocalUploader(config.ConfigInfo.Upload.Dir, config.ConfigInfo.Upload.PublicPrefix)
		if err != nil {
			return err
		}
		Default = l
		return nil
	case "minio":
		m, err := InitMinio()
		if err != nil {
			return err
		}
		Default = m
		return nil
	}
	return errors.Errorf("unknown upload backend %q", config.ConfigInfo.Upload.Backend)
}

func InitMinio() (*MinioUploader, error) {
	c := config.ConfigInfo.Minio
	hlog.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", c.Endpoint, c.AccessKey)

	client, err := minio.New(c.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.AccessKey, c.SecretKey, ""),
		Secure: c.UseSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return nil, err
	}
	publicURL := c.PublicURL
	if publicURL == "" {
		scheme := "http://"
		if c.UseSSL {
			scheme = "https://"
		}
		publicURL = scheme + c.Endpoint
	}
	hlog.Info("Connect Minio Success")
	return &MinioUploader{
		client:    client,
		bucket:    c.Bucket,
		location:  constants.DefaultMinioLocation,
		publicURL: publicURL,
	}, nil
}
