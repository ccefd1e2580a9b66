package helper

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"homework_backend/internals/configs"
)

// MaxPhotoBytes is the decoded size limit of a submission photo.
const MaxPhotoBytes = 5 * 1024 * 1024

var (
	ErrPhotoNotDataURL  = errors.New("photo must be a base64 image data URL")
	ErrPhotoTooLarge    = errors.New("photo must be 5MB or smaller")
	ErrPhotoNotImage    = errors.New("photo is not a valid image")
	ErrPhotoUnsupported = errors.New("photo must be jpeg, png, gif or webp")
	ErrPhotoMismatch    = errors.New("photo content does not match its declared type")
	supportedPhotoMimes = map[string]string{"image/jpeg": "jpg", "image/jpg": "jpg", "image/png": "png", "image/gif": "gif", "image/webp": "webp"}
)

type Photo struct {
	DataURL     string
	ContentType string
	Ext         string
	Bytes       []byte
}

// DecodePhoto parses "data:image/<fmt>;base64,<payload>" and checks that the payload
// is an image of the declared kind.
func DecodePhoto(dataURL string) (*Photo, error) {
	dataURL = strings.TrimSpace(dataURL)
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, ErrPhotoNotDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, ErrPhotoNotDataURL
	}
	ct := strings.ToLower(strings.TrimSuffix(meta, ";base64"))
	ext, ok := supportedPhotoMimes[ct]
	if !ok {
		return nil, ErrPhotoUnsupported
	}
	// base64 is 4/3 of the raw size; reject obviously oversized payloads before decoding.
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxPhotoBytes+3 {
		return nil, ErrPhotoTooLarge
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrPhotoNotDataURL
	}
	if len(raw) > MaxPhotoBytes {
		return nil, ErrPhotoTooLarge
	}

	if ext == "webp" {
		if _, err := webp.DecodeConfig(bytes.NewReader(raw)); err != nil {
			return nil, ErrPhotoNotImage
		}
	} else {
		// imaging registers the jpeg, png and gif decoders used by DecodeConfig.
		_, format, err := image.DecodeConfig(bytes.NewReader(raw))
		if err != nil {
			return nil, ErrPhotoNotImage
		}
		if photoExt(format) != ext {
			return nil, ErrPhotoMismatch
		}
		if _, err := imaging.Decode(bytes.NewReader(raw)); err != nil {
			return nil, ErrPhotoNotImage
		}
	}
	return &Photo{DataURL: dataURL, ContentType: ct, Ext: ext, Bytes: raw}, nil
}

func photoExt(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return format
}

/* =======================================================================
   Photo stores
======================================================================= */

// PhotoStore persists a verified photo and returns the value kept in the photo column.
type PhotoStore interface {
	Save(ctx context.Context, dir string, p *Photo) (string, error)
	Delete(ctx context.Context, ref string) error
}

// InlineStore keeps the data URL in the row itself.
type InlineStore struct{}

func (InlineStore) Save(_ context.Context, _ string, p *Photo) (string, error) {
	return p.DataURL, nil
}

func (InlineStore) Delete(context.Context, string) error { return nil }

type OSSPhotoStore struct {
	svc *OSSService
}

func NewOSSPhotoStore(svc *OSSService) *OSSPhotoStore { return &OSSPhotoStore{svc: svc} }

func (s *OSSPhotoStore) Save(ctx context.Context, dir string, p *Photo) (string, error) {
	key := s.svc.buildObjectKey(dir, p.Ext)
	if err := s.svc.PutBytes(ctx, key, p.Bytes, p.ContentType); err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}
	return s.svc.PublicURL(key), nil
}

// Delete ignores inline data URLs and URLs outside the bucket.
func (s *OSSPhotoStore) Delete(ctx context.Context, ref string) error {
	if ref == "" || strings.HasPrefix(ref, "data:") {
		return nil
	}
	key, ok := s.svc.KeyFromPublicURL(ref)
	if !ok {
		return nil
	}
	return s.svc.DeleteObject(ctx, key)
}

// NewPhotoStoreFromEnv picks the store from PHOTO_STORAGE ("inline" | "oss").
// A broken OSS configuration falls back to inline.
func NewPhotoStoreFromEnv() PhotoStore {
	if strings.ToLower(configs.GetEnv("PHOTO_STORAGE", "inline")) != "oss" {
		return InlineStore{}
	}
	svc, err := NewOSSServiceFromEnv(configs.GetEnv("ALI_OSS_PREFIX", "homeworks"))
	if err != nil {
		log.Printf("[ERROR] OSS photo storage unavailable, using inline: %v", err)
		return InlineStore{}
	}
	log.Println("[INFO] photos stored in OSS bucket", svc.BucketName)
	return NewOSSPhotoStore(svc)
}
