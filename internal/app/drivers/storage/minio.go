package storage

import (
	"fmt"
	"heallink-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// NewMinio builds the object-store client that backs health-record
// attachments. Only called when MINIO_ENABLED is set.
func NewMinio(driverConfig *config.DriverConfig, bootLog *logrus.Logger) *minio.Client {
	endpoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		bootLog.WithError(err).Fatal("minio client initialization failed")
	}

	bootLog.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   driverConfig.Minio.BucketName,
	}).Info("minio connected")
	return client
}
