package extension

// Types covers extensions that mime.TypeByExtension does not know on every platform.
var Types = map[string]string{
	".txt":  "text/plain",
	".log":  "text/plain",
	".ini":  "text/plain",
	".rst":  "text/plain",
	".csv":  "text/csv",
	".tsv":  "text/tab-separated-values",
	".md":   "text/markdown",
	".mdx":  "text/markdown",
	".html": "text/html",
	".htm":  "text/html",
	".json": "application/json",
	".xml":  "application/xml",
	".yaml": "application/yaml",
	".yml":  "application/yaml",

	".pdf": "application/pdf",

	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",

	".eml": "message/rfc822",
	".msg": "application/vnd.ms-outlook",
}
