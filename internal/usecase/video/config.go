package video

import "strings"

const MaxVideoSize = 500 * 1024 * 1024     // 500 MB
const MaxAttachmentSize = 50 * 1024 * 1024 // 50 MB

const (
	BucketVideos       = "videos"
	BucketAttachments  = "attachments"
	BucketDescriptions = "descriptions"
)

var videoMimeTypes = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
}

var attachmentMimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".md":   "text/markdown",
	".txt":  "text/plain",
	".zip":  "application/zip",
}

// IsVideoExtensionAllowed reports whether ext names a playable video format.
func IsVideoExtensionAllowed(ext string) bool {
	_, ok := videoMimeTypes[strings.ToLower(ext)]
	return ok
}

// MimeTypeForExtension resolves a file extension to the content type sent to
// object storage. Unknown extensions fall back to a generic binary type.
func MimeTypeForExtension(ext string) string {
	ext = strings.ToLower(ext)
	if mt, ok := videoMimeTypes[ext]; ok {
		return mt
	}
	if mt, ok := attachmentMimeTypes[ext]; ok {
		return mt
	}
	return "application/octet-stream"
}
