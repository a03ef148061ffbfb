package utils

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"

	"github.com/camden-git/hrmbackend/media"
)

const (
	AvatarJpegQuality   = 85
	AvatarFileExtension = ".jpg"
)

// ProcessAvatar decodes an uploaded image, applies its EXIF orientation and crops it
// to a centered square of opts.Size pixels encoded as JPEG.
func ProcessAvatar(fileData io.Reader, opts media.ImageProcessingOptions) (*bytes.Buffer, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("invalid avatar size %d", opts.Size)
	}
	quality := opts.Quality
	if quality <= 0 {
		quality = AvatarJpegQuality
	}

	img, err := imaging.Decode(fileData, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode uploaded avatar image: %w", err)
	}

	square := imaging.Fill(img, opts.Size, opts.Size, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, square, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode avatar: %w", err)
	}
	return &buf, nil
}

// ProcessAndSaveAvatar processes an upload and stores it under a UUID filename.
// It returns the store-relative path of the saved avatar.
func ProcessAndSaveAvatar(fileData io.Reader, store media.Store, opts media.ImageProcessingOptions) (string, error) {
	buf, err := ProcessAvatar(fileData, opts)
	if err != nil {
		return "", err
	}
	rel, err := store.Save(media.AssetTypeAvatar, "", AvatarFileExtension, buf)
	if err != nil {
		return "", fmt.Errorf("failed to save avatar: %w", err)
	}
	return rel, nil
}
