package handlers

import "errors"

var (
	ErrMalformedProduct    = errors.New("malformed product: expected <category>, <name>, <quantity>, <price>")
	ErrMalformedOrder      = errors.New("malformed order: expected <table>, <product>[, <product>...]")
	ErrMalformedInfo       = errors.New("malformed info command: missing product name")
	ErrUnrecognizedCommand = errors.New("unrecognized command")
)
