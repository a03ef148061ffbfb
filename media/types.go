package media

type AssetType string

const (
	AssetTypeAvatar  AssetType = "avatar"
	AssetTypeUnknown AssetType = "unknown"
)

// ImageProcessingOptions holds parameters for avatar transformations
type ImageProcessingOptions struct {
	Size    int // edge length of the square output
	Quality int // JPEG quality, defaults to 85
}
