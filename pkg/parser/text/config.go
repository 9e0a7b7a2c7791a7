package text

var SupportedMimeTypes = []string{
	"text/*",

	"application/json",
	"application/xml",
	"application/yaml",
	"application/x-yaml",
	"application/javascript",
}
