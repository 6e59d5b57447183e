package config

import (
	"fmt"
	"strings"
)

// Storage drivers understood by the filestore package.
const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

// StorageConfig describes where uploaded blog and product images live and
// how their public URLs are built.
type StorageConfig struct {
	// Driver selects the backend: "local" (default) or "s3".
	Driver string `koanf:"driver"`

	// BaseURL prefixes every derived image URL,
	// e.g. http://localhost:8080/api -> http://localhost:8080/api/blog/file/a.jpg
	BaseURL string `koanf:"base_url"`

	// RootDir is the directory the local driver writes under.
	RootDir string `koanf:"root_dir"`

	BlogFolder    string `koanf:"blog_folder"`
	ProductFolder string `koanf:"product_folder"`

	// MaxUploadSize caps a single image upload, in bytes.
	MaxUploadSize int64 `koanf:"max_upload_size"`

	S3 S3Config `koanf:"s3"`
}

// S3Config configures the S3 (or S3-compatible) backend.
// Endpoint and UsePathStyle are only needed for MinIO-like services.
type S3Config struct {
	Region          string `koanf:"region"`
	Bucket          string `koanf:"bucket"`
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
	Endpoint        string `koanf:"endpoint"`
	UsePathStyle    bool   `koanf:"use_path_style"`
}

// DefaultStorageConfig stores images on local disk under ./uploads.
func DefaultStorageConfig() *StorageConfig {
	return &StorageConfig{
		Driver:        StorageDriverLocal,
		BaseURL:       "http://localhost:8080/api",
		RootDir:       "uploads",
		BlogFolder:    "blog",
		ProductFolder: "product",
		MaxUploadSize: 5 << 20,
		S3: S3Config{
			Region: "us-east-1",
		},
	}
}

// withDefaults fills every empty field from DefaultStorageConfig.
// A nil receiver yields the defaults unchanged.
func (s *StorageConfig) withDefaults() *StorageConfig {
	d := DefaultStorageConfig()
	if s == nil {
		return d
	}

	out := *s
	if out.Driver == "" {
		out.Driver = d.Driver
	}
	if out.BaseURL == "" {
		out.BaseURL = d.BaseURL
	}
	out.BaseURL = strings.TrimRight(out.BaseURL, "/")
	if out.RootDir == "" {
		out.RootDir = d.RootDir
	}
	if out.BlogFolder == "" {
		out.BlogFolder = d.BlogFolder
	}
	if out.ProductFolder == "" {
		out.ProductFolder = d.ProductFolder
	}
	if out.MaxUploadSize <= 0 {
		out.MaxUploadSize = d.MaxUploadSize
	}
	if out.S3.Region == "" {
		out.S3.Region = d.S3.Region
	}
	return &out
}

// Validate rejects unknown drivers and an s3 driver without a bucket.
func (s *StorageConfig) Validate() error {
	switch s.Driver {
	case StorageDriverLocal:
		return nil
	case StorageDriverS3:
		if s.S3.Bucket == "" {
			return fmt.Errorf("storage.s3.bucket is required for the s3 driver")
		}
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q (must be one of: local, s3)", s.Driver)
	}
}
