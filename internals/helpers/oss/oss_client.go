// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"homework_backend/internals/configs"
)

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	PublicBase string
	Prefix     string // optional: "homeworks"
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := configs.GetEnv("ALI_OSS_ENDPOINT")
	ak := configs.GetEnv("ALI_OSS_ACCESS_KEY")
	sk := configs.GetEnv("ALI_OSS_SECRET_KEY")
	sts := configs.GetEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := configs.GetEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s)", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		PublicBase: strings.TrimRight(configs.GetEnv("ALI_OSS_PUBLIC_BASE"), "/"),
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (s *OSSService) PutBytes(ctx context.Context, key string, data []byte, contentType string) error {
	return s.Bucket.PutObject(key, bytes.NewReader(data),
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	)
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

/* =======================================================================
   Public URL & Key utils
======================================================================= */

func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if s.PublicBase != "" {
		return s.PublicBase + "/" + key
	}
	end := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

// KeyFromPublicURL is the inverse of PublicURL. ok is false for URLs of another bucket.
func (s *OSSService) KeyFromPublicURL(publicURL string) (string, bool) {
	prefix := s.PublicURL("x")
	prefix = strings.TrimSuffix(prefix, "x")
	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(publicURL, prefix)
	return key, key != ""
}

func (s *OSSService) buildObjectKey(dir, ext string) string {
	ts := time.Now().UTC().Format("20060102_150405")
	parts := make([]string, 0, 3)
	if s.Prefix != "" {
		parts = append(parts, s.Prefix)
	}
	if dir = strings.Trim(dir, "/"); dir != "" {
		parts = append(parts, dir)
	}
	parts = append(parts, fmt.Sprintf("%s_%s.%s", ts, randHex(4), ext))
	return strings.Join(parts, "/")
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
