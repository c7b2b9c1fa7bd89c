package config

// MediaConfig 画像保存先の設定
type MediaConfig struct {
	Backend      string // local, cloudinary, s3, minio
	UploadDir    string
	PublicPath   string
	MaxSize      int64
	AllowedTypes map[string]string // Content-Type -> 拡張子

	Cloudinary CloudinaryConfig
	S3         S3Config
	Minio      MinioConfig
}

// CloudinaryConfig Cloudinary設定
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// S3Config AWS S3設定
type S3Config struct {
	Region    string
	Bucket    string
	Endpoint  string // R2やLocalStackなどS3互換の場合に指定
	PublicURL string
}

// MinioConfig MinIO設定
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

func loadMediaConfig() MediaConfig {
	return MediaConfig{
		Backend:    getEnv("MEDIA_BACKEND", "local"),
		UploadDir:  getEnv("UPLOAD_DIR", "./media"),
		PublicPath: getEnv("MEDIA_PUBLIC_PATH", "/media"),
		MaxSize:    int64(getEnvAsInt("MAX_UPLOAD_SIZE", 10)) * 1024 * 1024, // MB to Bytes
		AllowedTypes: map[string]string{
			"image/jpeg": ".jpg",
			"image/png":  ".png",
			"image/webp": ".webp",
			"image/gif":  ".gif",
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
			Folder:    getEnv("CLOUDINARY_FOLDER", "eatratelove"),
		},
		S3: S3Config{
			Region:    getEnv("AWS_REGION", "ap-northeast-1"),
			Bucket:    getEnv("S3_BUCKET", ""),
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			PublicURL: getEnv("S3_PUBLIC_URL", ""),
		},
		Minio: MinioConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "media"),
			UseSSL:    getEnvAsBool("MINIO_USE_SSL", false),
			PublicURL: getEnv("MINIO_PUBLIC_URL", ""),
		},
	}
}
