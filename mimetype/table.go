package mimetype

// Well-known content types used across the listing pipeline.
const (
	TypeTextPlain         = "text/plain"
	TypeTextHTML          = "text/html"
	TypeTextCSS           = "text/css"
	TypeTextJavaScript    = "text/javascript"
	TypeTextCSV           = "text/csv"
	TypeImageJPEG         = "image/jpeg"
	TypeImagePNG          = "image/png"
	TypeImageGIF          = "image/gif"
	TypeImageWebP         = "image/webp"
	TypeImageSVGXML       = "image/svg+xml"
	TypeAudioMpeg         = "audio/mpeg"
	TypeAudioWAV          = "audio/wav"
	TypeAudioOGG          = "audio/ogg"
	TypeVideoMP4          = "video/mp4"
	TypeVideoWebM         = "video/webm"
	TypeApplicationPDF    = "application/pdf"
	TypeApplicationZip    = "application/zip"
	TypeApplicationGZip   = "application/gzip"
	TypeApplicationXTar   = "application/x-tar"
	TypeApplicationBZip2  = "application/x-bzip2"
	TypeApplicationLzma   = "application/x-lzma"
	TypeApplicationJSON   = "application/json"
	TypeApplicationXML    = "application/xml"
	TypeApplicationStream = "application/octet-stream"
)

// extensionToType maps file extensions to MIME types
var extensionToType = map[string]string{
	".txt":  TypeTextPlain,
	".md":   TypeTextPlain,
	".html": TypeTextHTML,
	".css":  TypeTextCSS,
	".js":   TypeTextJavaScript,
	".csv":  TypeTextCSV,
	".jpg":  TypeImageJPEG,
	".jpeg": TypeImageJPEG,
	".png":  TypeImagePNG,
	".gif":  TypeImageGIF,
	".webp": TypeImageWebP,
	".svg":  TypeImageSVGXML,
	".mp3":  TypeAudioMpeg,
	".wav":  TypeAudioWAV,
	".ogg":  TypeAudioOGG,
	".mp4":  TypeVideoMP4,
	".webm": TypeVideoWebM,
	".pdf":  TypeApplicationPDF,
	".zip":  TypeApplicationZip,
	".gz":   TypeApplicationGZip,
	".tar":  TypeApplicationXTar,
	".bz2":  TypeApplicationBZip2,
	".lzma": TypeApplicationLzma,
	".json": TypeApplicationJSON,
	".xml":  TypeApplicationXML,
}
