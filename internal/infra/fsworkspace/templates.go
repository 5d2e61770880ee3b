package fsworkspace

import "embed"

//go:embed templates/crossedwires.yaml templates/inputs/*
var templatesFS embed.FS
