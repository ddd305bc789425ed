package domain

import "errors"

var (
	ErrLayerNotFound    = errors.New("layer not found")
	ErrParentNotFound   = errors.New("parent layer not found")
	ErrDuplicateLayerID = errors.New("layer id already exists")
	ErrLayerLocked      = errors.New("layer is locked")
	ErrInvalidLayer     = errors.New("invalid layer")
	ErrInvalidProject   = errors.New("invalid project")
	ErrTemplateNotFound = errors.New("template not found")
)
