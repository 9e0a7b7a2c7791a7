package tika

import (
	"net/http"
)

var SupportedMimeTypes = []string{
	"application/pdf",

	"image/jpeg",
	"image/png",

	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",

	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",

	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",

	"application/vnd.oasis.opendocument.text",
	"application/vnd.oasis.opendocument.spreadsheet",
	"application/rtf",
	"application/epub+zip",
	"message/rfc822",
	"application/vnd.ms-outlook",
}

type Option func(*Parser)

func WithClient(client *http.Client) Option {
	return func(p *Parser) {
		p.client = client
	}
}
