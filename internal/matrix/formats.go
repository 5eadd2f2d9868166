package matrix

import "strings"

var fileFormats = map[string]string{
	"video":          "MP4",
	"image":          "JPG/PNG",
	"image_or_video": "MP4/JPG",
	"html5":          "HTML5",
	"image_or_html5": "HTML5/JPG",
	"video_or_image": "MP4/JPG",
}

// containerMedia maps file extensions to the media family they carry.
var containerMedia = map[string]string{
	"mp4":  "video",
	"mov":  "video",
	"webm": "video",
	"jpg":  "image",
	"jpeg": "image",
	"png":  "image",
	"gif":  "image",
}

const (
	videoAudioSpec = "Sound on recommended; ensure captions for accessibility"
	videoCodec     = "H.264"
	videoFrameRate = "30fps"
)

// fileFormat maps a file type to the deliverable format label.
func fileFormat(fileType string) string {
	if f, ok := fileFormats[strings.ToLower(fileType)]; ok {
		return f
	}
	return strings.ToUpper(fileType)
}

// baseMediaType returns the leading media family of a file type, so
// "video_or_image" and "mp4/jpg" both resolve to "video".
func baseMediaType(fileType string) string {
	tokens := strings.FieldsFunc(strings.ToLower(fileType), func(r rune) bool {
		return r == '_' || r == '/' || r == ' '
	})
	if len(tokens) == 0 {
		return ""
	}
	if family, ok := containerMedia[tokens[0]]; ok {
		return family
	}
	return tokens[0]
}
